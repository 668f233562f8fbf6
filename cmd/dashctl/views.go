package main

import (
	"github.com/spf13/cobra"

	"github.com/minerahub/dashboard/backend/internal/services"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox [user-id]",
	Short: "List a user's conversations, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUint(args[0], "user id")
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		convs, err := newServices().Inbox.Conversations(ctx, userID)
		if err != nil {
			return err
		}
		return printJSON(cmd, convs)
	},
}

var (
	forumType   string
	forumPolicy string
)

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "List enriched forum posts, newest first",
	Example: `  dashctl forum --type report
  dashctl forum --policy strict --failure-rate 0.2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := services.ParseEnrichmentPolicy(forumPolicy)
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		posts, err := newServices().Forum.List(ctx, forumType, policy)
		if err != nil {
			return err
		}
		return printJSON(cmd, posts)
	},
}

var followerSearch string

var followersCmd = &cobra.Command{
	Use:   "followers [company-id]",
	Short: "List a company's followers with their following-since label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		companyID, err := parseUint(args[0], "company id")
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		page, err := newServices().Followers.Followers(ctx, companyID, followerSearch)
		if err != nil {
			return err
		}
		return printJSON(cmd, page)
	},
}

var (
	caseStatus string
	viewSeed   uint64
)

var casesCmd = &cobra.Command{
	Use:   "cases [company-id]",
	Short: "Show a company's social investment portfolio and stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		companyID, err := parseUint(args[0], "company id")
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		portfolio, err := newServices().SocialCases.List(ctx, companyID, caseStatus, viewSeed)
		if err != nil {
			return err
		}
		return printJSON(cmd, portfolio)
	},
}

var (
	reportCategory string
	reportZipcode  string
	heatmap        bool
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Place community reports on the map, or print heatmap weights",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		svc := newServices().CommunityReports
		if heatmap {
			points, err := svc.Heatmap(ctx, viewSeed)
			if err != nil {
				return err
			}
			return printJSON(cmd, points)
		}
		placed, err := svc.Map(ctx, viewSeed, reportCategory, reportZipcode)
		if err != nil {
			return err
		}
		return printJSON(cmd, placed)
	},
}

func init() {
	forumCmd.Flags().StringVar(&forumType, "type", "all", "Post type: opinion, suggestion, report or all")
	forumCmd.Flags().StringVar(&forumPolicy, "policy", "degrade", "Enrichment failure policy: degrade or strict")

	followersCmd.Flags().StringVarP(&followerSearch, "query", "q", "", "Filter by username or email")

	casesCmd.Flags().StringVar(&caseStatus, "status", "all", "Case status: active, completed, planned or all")
	casesCmd.Flags().Uint64Var(&viewSeed, "seed", 42, "Seed for synthesised status and beneficiaries")

	reportsCmd.Flags().StringVar(&reportCategory, "category", "", "Only reports of this category")
	reportsCmd.Flags().StringVar(&reportZipcode, "zipcode", "", "Only reports filed in this zipcode")
	reportsCmd.Flags().BoolVar(&heatmap, "heatmap", false, "Print weighted heatmap points instead")
	reportsCmd.Flags().Uint64Var(&viewSeed, "seed", 42, "Seed for synthesised location and status")
}
