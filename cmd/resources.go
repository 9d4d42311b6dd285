package cmd

import (
	"strings"

	"coursectl/internal/api"
	"coursectl/internal/cli"
	"coursectl/pkg/logging"

	"github.com/spf13/cobra"
)

// resourceCmd bundles what every list/create/get/delete subcommand needs.
type resourceCmd struct {
	output string
}

func (r *resourceCmd) bindOutput(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&r.output, "output", "o", "table", "Output format (table, json, yaml)")
}

// connect validates --output and builds the backend client from the global flags.
func (r *resourceCmd) connect(cmd *cobra.Command) (*api.Client, *cli.Printer, error) {
	format, err := cli.ParseOutputFormat(r.output)
	if err != nil {
		return nil, nil, err
	}

	application, err := newApplication()
	if err != nil {
		return nil, nil, err
	}
	logging.Debug("CLI", "%s against %s", cmd.CommandPath(), application.Client().BaseURL())
	return application.Client(), cli.NewPrinter(format, cmd.OutOrStdout()), nil
}

func newCoursesCmd() *cobra.Command {
	r := &resourceCmd{}
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"course"},
		Short:   "Manage courses",
		Long: `Manage courses on the backend.

Available commands:
  list     - List all courses
  create   - Create a course
  get      - Show a single course by id
  delete   - Delete a course by id`,
	}
	r.bindOutput(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			courses, err := api.NewCourseEndpoint(client).List(cmd.Context())
			if err != nil {
				return err
			}
			return printer.Courses(courses)
		},
	})

	var payload api.CoursePayload
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a course",
		Long: `Create a course. The title is required; the backend assigns the id.

Example:
  coursectl courses create --title "Databases" --credits 6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			course, err := api.NewCourseEndpoint(client).Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return printer.Course(course)
		},
	}
	create.Flags().StringVar(&payload.Title, "title", "", "Course title")
	create.Flags().StringVar(&payload.Description, "description", "", "Course description")
	create.Flags().IntVar(&payload.Credits, "credits", 5, "Credit points")
	_ = create.MarkFlagRequired("title")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a course by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			course, err := api.NewCourseEndpoint(client).Get(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			return printer.Course(course)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a course by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if err := api.NewCourseEndpoint(client).Delete(cmd.Context(), id); err != nil {
				return err
			}
			return printer.Deleted("course", id)
		},
	})

	return cmd
}

func newParticipantsCmd() *cobra.Command {
	r := &resourceCmd{}
	cmd := &cobra.Command{
		Use:     "participants",
		Aliases: []string{"participant"},
		Short:   "Manage participants",
		Long: `Manage participants on the backend.

Available commands:
  list     - List all participants
  create   - Create a participant
  get      - Show a single participant by id
  delete   - Delete a participant by id`,
	}
	r.bindOutput(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			participants, err := api.NewParticipantEndpoint(client).List(cmd.Context())
			if err != nil {
				return err
			}
			return printer.Participants(participants)
		},
	})

	var payload api.ParticipantPayload
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a participant",
		Long: `Create a participant. The email is required; the backend assigns the id.

Example:
  coursectl participants create --first-name Ada --last-name Lovelace --email ada@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			participant, err := api.NewParticipantEndpoint(client).Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			return printer.Participant(participant)
		},
	}
	create.Flags().StringVar(&payload.FirstName, "first-name", "", "First name")
	create.Flags().StringVar(&payload.LastName, "last-name", "", "Last name")
	create.Flags().StringVar(&payload.Email, "email", "", "Email address")
	_ = create.MarkFlagRequired("email")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a participant by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			participant, err := api.NewParticipantEndpoint(client).Get(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			return printer.Participant(participant)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a participant by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, printer, err := r.connect(cmd)
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[0])
			if err := api.NewParticipantEndpoint(client).Delete(cmd.Context(), id); err != nil {
				return err
			}
			return printer.Deleted("participant", id)
		},
	})

	return cmd
}
