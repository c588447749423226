package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/docfab/docgen/internal/domain/document"
	"github.com/spf13/cobra"
)

var (
	documentAddType    string
	documentAddClient  string
	documentAddProject string
	documentAddFile    string
	documentAddAmount  float64
	documentAddStatus  string
	documentAddDue     string
	documentListClient string
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage document records",
}

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a generated document and mint its number",
	RunE:  runDocumentAdd,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List document records",
	RunE:  runDocumentList,
}

func init() {
	f := documentAddCmd.Flags()
	f.StringVar(&documentAddType, "type", "", "Document type: invoice, offer, credentials, concept, documentation (required)")
	f.StringVar(&documentAddClient, "client", "", "Client reference (K-XXX or number)")
	f.StringVar(&documentAddProject, "project", "", "Project reference (P-XXX-YY)")
	f.StringVar(&documentAddFile, "file", "", "Path of the generated file (required)")
	f.Float64Var(&documentAddAmount, "amount", 0, "Document amount")
	f.StringVar(&documentAddStatus, "status", "", "Document status (default draft)")
	f.StringVar(&documentAddDue, "due", "", "Due date")
	_ = documentAddCmd.MarkFlagRequired("type")
	_ = documentAddCmd.MarkFlagRequired("file")

	documentListCmd.Flags().StringVar(&documentListClient, "client", "", "Only documents for this client")

	documentCmd.AddCommand(documentAddCmd, documentListCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	req := document.CreateRequest{
		Type:     documentAddType,
		FilePath: documentAddFile,
		Status:   documentAddStatus,
		DueDate:  documentAddDue,
	}

	if documentAddClient != "" {
		c, err := app.clients.Resolve(ctx, documentAddClient)
		if err != nil {
			return err
		}
		req.ClientID = &c.ID
	}
	if documentAddProject != "" {
		p, err := app.projects.Resolve(ctx, documentAddProject)
		if err != nil {
			return err
		}
		req.ProjectID = &p.ID
	}
	if cmd.Flags().Changed("amount") {
		req.Amount = &documentAddAmount
	}

	d, err := app.documents.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		okStyle.Render("✓"),
		app.loc.Tf("document", "created", d.Number))
	return nil
}

func runDocumentList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()

	var docs []document.Document
	if documentListClient != "" {
		c, err := app.clients.Resolve(ctx, documentListClient)
		if err != nil {
			return err
		}
		docs, err = app.documents.ListByClient(ctx, c.ID)
		if err != nil {
			return err
		}
	} else {
		docs, err = app.documents.List(ctx)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if len(docs) == 0 {
		fmt.Fprintln(out, app.loc.T("document", "no_documents"))
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render(app.loc.T("document", "documents")))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			numberStyle.Render(d.Number),
			d.Type,
			d.FilePath,
			faintStyle.Render(d.Status),
		)
	}
	return w.Flush()
}
