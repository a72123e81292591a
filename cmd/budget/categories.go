package main

import (
	"fmt"
	"strings"

	"github.com/Veraticus/the-budget-must-balance/internal/cli"
	"github.com/Veraticus/the-budget-must-balance/internal/common"
	"github.com/Veraticus/the-budget-must-balance/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add and re-bucket the categories expenses are recorded against.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(setBucketCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: withSession(func(cmd *cobra.Command, _ []string, s *session) error {
			out := cmd.OutOrStdout()
			for _, bucket := range model.Buckets {
				fmt.Fprintln(out, cli.BucketStyle(bucket).Bold(true).Render(bucket.Title()))
				for _, cat := range s.dir.All() {
					if cat.Bucket != bucket || cat.IsSubcategory() {
						continue
					}
					fmt.Fprintf(out, "  %s %s %s\n", cat.Icon, cat.Name, cli.SubtleStyle.Render("("+cat.ID+")"))
					for _, child := range s.dir.Children(cat.ID) {
						fmt.Fprintf(out, "      %s %s\n", child.Name, cli.SubtleStyle.Render("("+child.ID+", "+string(child.Bucket)+")"))
					}
				}
				fmt.Fprintln(out)
			}
			return nil
		}),
	}
}

func addCategoryCmd() *cobra.Command {
	var id, bucket, parent, icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category or subcategory",
		Long: `Create a new category. A subcategory (--parent) always takes its
parent's bucket.`,
		Args: cobra.ExactArgs(1),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			name := args[0]
			if id == "" {
				id = slug(name)
			}

			cat, err := s.dir.Add(model.Category{
				ID:       id,
				Name:     name,
				Icon:     icon,
				Bucket:   model.Bucket(bucket),
				ParentID: parent,
			})
			if err != nil {
				return common.NewUserError("Could not add the category", err)
			}

			if err := s.save(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s (%s) to %s", cat.Name, cat.ID, cat.Bucket)))
			return nil
		}),
	}

	cmd.Flags().StringVar(&id, "id", "", "stable identifier (default: derived from the name)")
	cmd.Flags().StringVar(&bucket, "bucket", string(model.BucketWants), "needs, wants or savings")
	cmd.Flags().StringVar(&parent, "parent", "", "parent category ID for a subcategory")
	cmd.Flags().StringVar(&icon, "icon", "", "emoji shown next to the name")

	return cmd
}

func setBucketCmd() *cobra.Command {
	var restamp bool

	cmd := &cobra.Command{
		Use:   "set-bucket <id> <bucket>",
		Short: "Move a category to another bucket",
		Long: `Change which 50/30/20 bucket a category counts toward. Expenses keep
the bucket they were recorded with unless --restamp is given. Subcategories
are not moved along with their parent.`,
		Args: cobra.ExactArgs(2),
		RunE: withSession(func(cmd *cobra.Command, args []string, s *session) error {
			if err := s.dir.SetBucket(args[0], model.Bucket(args[1])); err != nil {
				return common.NewUserError("Could not change the bucket", err)
			}

			if restamp {
				s.store.Expenses = s.dir.Restamp(s.store.Expenses)
			}

			if err := s.save(cmd.Context()); err != nil {
				return err
			}

			msg := fmt.Sprintf("%s now counts toward %s", args[0], args[1])
			if restamp {
				msg += "; existing expenses were updated"
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&restamp, "restamp", false, "also update the bucket on recorded expenses")
	return cmd
}

func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
