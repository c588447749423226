package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/docfab/docgen/internal/domain/client"
	"github.com/spf13/cobra"
)

var clientAddFlags client.CreateRequest

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE:  runClientList,
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new client",
	RunE:  runClientAdd,
}

var clientShowCmd = &cobra.Command{
	Use:   "show <client>",
	Short: "Show one client with its projects",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientShow,
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <client>",
	Short: "Delete a client without projects",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientDelete,
}

func init() {
	f := clientAddCmd.Flags()
	f.StringVar(&clientAddFlags.Name, "name", "", "Contact name (required)")
	f.StringVar(&clientAddFlags.Company, "company", "", "Company name")
	f.StringVar(&clientAddFlags.Street, "street", "", "Street")
	f.StringVar(&clientAddFlags.HouseNumber, "house-number", "", "House number")
	f.StringVar(&clientAddFlags.PostalCode, "postal-code", "", "Postal code")
	f.StringVar(&clientAddFlags.City, "city", "", "City")
	f.StringVar(&clientAddFlags.Country, "country", "", "Country")
	f.StringVar(&clientAddFlags.Email, "email", "", "Email address")
	f.StringVar(&clientAddFlags.Phone, "phone", "", "Phone number")
	f.StringVar(&clientAddFlags.Notes, "notes", "", "Free-form notes")
	_ = clientAddCmd.MarkFlagRequired("name")

	clientCmd.AddCommand(clientListCmd, clientAddCmd, clientShowCmd, clientDeleteCmd)
	rootCmd.AddCommand(clientCmd)
}

func runClientList(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	clients, err := app.clients.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(clients) == 0 {
		fmt.Fprintln(out, app.loc.T("client", "no_clients"))
		fmt.Fprintln(out, app.loc.T("client", "create_with"))
		return nil
	}

	sort.Slice(clients, func(i, j int) bool { return clients[i].Number < clients[j].Number })

	fmt.Fprintln(out, titleStyle.Render(app.loc.T("client", "clients")))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range clients {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			numberStyle.Render(c.FormattedNumber()),
			c.DisplayName(),
			faintStyle.Render(c.City),
		)
	}
	return w.Flush()
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	c, err := app.clients.Create(cmd.Context(), clientAddFlags)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		okStyle.Render("✓"),
		app.loc.Tf("client", "created", c.FormattedNumber()))
	return nil
}

func runClientShow(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintf(out, "\n%s %s\n", numberStyle.Render(c.FormattedNumber()), titleStyle.Render(c.DisplayName()))
	if addr := c.FullAddress(); addr != "" {
		fmt.Fprintln(out, addr)
	}
	if c.Email != "" {
		fmt.Fprintln(out, c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintln(out, c.Phone)
	}

	if len(projects) > 0 {
		fmt.Fprintf(out, "\n%s:\n", titleStyle.Render(app.loc.T("project", "projects")))
		for _, p := range projects {
			fmt.Fprintf(out, "  %s │ %s │ %s\n",
				numberStyle.Render(p.FormattedNumber(c.Number)), p.Name, faintStyle.Render(p.Status))
		}
	}
	return nil
}

func runClientDelete(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s\n",
		warnStyle.Render("⚠"), numberStyle.Render(c.FormattedNumber()), c.DisplayName())

	if err := app.clients.Delete(ctx, c.ID); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", okStyle.Render("✓"), app.loc.T("client", "deleted"))
	return nil
}
