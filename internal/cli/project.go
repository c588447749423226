package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/docfab/docgen/internal/domain/project"
	"github.com/spf13/cobra"
)

var (
	projectAddName        string
	projectAddDescription string
	projectAddRate        float64
	projectAddStatus      string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list <client>",
	Short: "List a client's projects",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectList,
}

var projectAddCmd = &cobra.Command{
	Use:   "add <client>",
	Short: "Register a new project for a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <P-XXX-YY>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

func init() {
	f := projectAddCmd.Flags()
	f.StringVar(&projectAddName, "name", "", "Project name (required)")
	f.StringVar(&projectAddDescription, "description", "", "Project description")
	f.Float64Var(&projectAddRate, "rate", 0, "Hourly rate")
	f.StringVar(&projectAddStatus, "status", "", "Project status (default active)")
	_ = projectAddCmd.MarkFlagRequired("name")

	projectCmd.AddCommand(projectListCmd, projectAddCmd, projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	c, err := app.clients.Resolve(ctx, args[0])
	if err != nil {
		return err
	}

	projects, err := app.projects.ListByClient(ctx, c.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", titleStyle.Render(app.loc.T("project", "for_client")), c.DisplayName())

	if len(projects) == 0 {
		fmt.Fprintln(out, app.loc.T("project", "no_projects"))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			numberStyle.Render(p.FormattedNumber(c.Number)),
			p.Name,
			faintStyle.Render(p.Status),
		)
	}
	return w.Flush()
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	c, err := app.clients.Resolve(ctx, args[0])
	if err != nil {
		return err
	}

	req := project.CreateRequest{
		ClientID:    c.ID,
		Name:        projectAddName,
		Description: projectAddDescription,
		Status:      projectAddStatus,
	}
	if cmd.Flags().Changed("rate") {
		req.HourlyRate = &projectAddRate
	}

	p, err := app.projects.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		okStyle.Render("✓"),
		app.loc.Tf("project", "created", p.FormattedNumber(c.Number)))
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	p, err := app.projects.Resolve(ctx, args[0])
	if err != nil {
		return err
	}

	c, err := app.clients.Get(ctx, p.ClientID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s\n",
		warnStyle.Render("⚠"), numberStyle.Render(p.FormattedNumber(c.Number)), p.Name)

	if err := app.projects.Delete(ctx, p.ID); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", okStyle.Render("✓"), app.loc.T("project", "deleted"))
	return nil
}
