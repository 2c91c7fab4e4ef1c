package main

import (
	"fmt"
	"io"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/model"
	"vulearn/internal/service"

	"github.com/spf13/cobra"
)

func (a *app) coursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse the course catalog",
	}

	var live bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			courses, err := a.courses.List(ctx, service.ListOptions{Live: live})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), courses, func(w io.Writer) {
				for _, c := range courses {
					writeCourseLine(w, c)
				}
			})
		},
	}
	list.Flags().BoolVar(&live, "live", false, "Ask the backend directly, bypassing caches")

	get := &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			c, err := a.courses.BySlug(ctx, args[0])
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), c, func(w io.Writer) {
				writeCourseLine(w, *c)
				fmt.Fprintf(w, "  by %s, %d lessons, %d min\n", c.Instructor.Name, len(c.Lessons), c.DurationMinutes)
				if c.Description != "" {
					fmt.Fprintf(w, "  %s\n", c.Description)
				}
			})
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func (a *app) enrollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <courseId>",
		Short: "Enroll the signed-in user in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			user, err := a.auth.CurrentUser(ctx)
			if err != nil {
				return err
			}
			e, err := a.enrollments.Enroll(ctx, dto.EnrollmentCreateDTO{UserID: user.UserID, CourseID: args[0]})
			if err != nil {
				return fmt.Errorf("enrolling: %w", err)
			}
			return a.print(cmd.OutOrStdout(), e, func(w io.Writer) {
				if e == nil {
					fmt.Fprintf(w, "Enrollment in %s requested\n", args[0])
					return
				}
				fmt.Fprintf(w, "Enrolled in %s (%s)\n", e.CourseID, e.ID)
			})
		},
	}
}

func (a *app) enrollmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrollments",
		Short: "List the signed-in user's enrollments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			enrolled, err := a.enrollments.Mine(ctx)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), enrolled, func(w io.Writer) {
				if len(enrolled) == 0 {
					fmt.Fprintln(w, "No enrollments")
					return
				}
				for _, e := range enrolled {
					title := e.CourseID
					if e.Course != nil {
						title = e.Course.Title
					}
					fmt.Fprintf(w, "%3d%%  %s\n", e.ProgressPercent, title)
				}
			})
		},
	}
}

func writeCourseLine(w io.Writer, c model.Course) {
	fmt.Fprintf(w, "%-24s %-40s %8.2f %s\n", c.Slug, c.Title, c.Price, c.Currency)
}
