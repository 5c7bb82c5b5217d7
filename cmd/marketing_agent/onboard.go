package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/marketing-agent/internal/types"
)

var (
	onboardForm       types.OnboardingForm
	onboardImagePaths []string
	onboardVideoPaths []string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Onboard a new client",
	Long:  `Submit the client onboarding form, including brand details and optional image/video attachments, and start content generation.`,
	RunE:  runOnboard,
}

func init() {
	onboardCmd.Flags().StringVar(&onboardForm.CompanyName, "company-name", "", "Company name (required)")
	onboardCmd.Flags().StringVar(&onboardForm.Industry, "industry", "", "Industry (required)")
	onboardCmd.Flags().StringVar(&onboardForm.BrandTone, "brand-tone", "", "Brand tone (required)")
	onboardCmd.Flags().StringVar(&onboardForm.TargetAudience, "target-audience", "", "Target audience (required)")
	onboardCmd.Flags().StringVar(&onboardForm.WebsiteURL, "website-url", "", "Company website URL")
	onboardCmd.Flags().StringVar(&onboardForm.SocialMediaHandles, "social-handles", "", "Social media handles")
	onboardCmd.Flags().StringVar(&onboardForm.MarketingGoals, "marketing-goals", "", "Marketing goals")
	onboardCmd.Flags().StringVar(&onboardForm.ContentPreferences, "content-preferences", "", "Content preferences")
	onboardCmd.Flags().StringVar(&onboardForm.BudgetRange, "budget-range", "", "Budget range")
	onboardCmd.Flags().StringVar(&onboardForm.PastExamples, "past-examples", "", "Past content examples")
	onboardCmd.Flags().StringVar(&onboardForm.Texts, "texts", "", "Additional text material")
	onboardCmd.Flags().StringSliceVar(&onboardForm.PrimaryChannels, "channel", nil, "Primary channel (repeatable)")
	onboardCmd.Flags().BoolVar(&onboardForm.GenerateImages, "generate-images", false, "Ask the backend to generate images")
	onboardCmd.Flags().StringSliceVar(&onboardImagePaths, "image", nil, "Image file to attach (repeatable)")
	onboardCmd.Flags().StringSliceVar(&onboardVideoPaths, "video", nil, "Video file to attach (repeatable)")
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	client, _, err := newBackendClient()
	if err != nil {
		return err
	}

	images, err := readUploads(onboardImagePaths)
	if err != nil {
		return err
	}
	videos, err := readUploads(onboardVideoPaths)
	if err != nil {
		return err
	}

	result, err := client.Onboard(cmd.Context(), onboardForm, images, videos)
	if err != nil {
		return err
	}

	fmt.Printf("Onboarded %s as %s\n", result.CompanyName, result.ClientID)
	return nil
}

func readUploads(paths []string) ([]types.FileUpload, error) {
	var uploads []types.FileUpload
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", path, err)
		}
		uploads = append(uploads, types.FileUpload{
			Filename: filepath.Base(path),
			Content:  content,
		})
	}
	return uploads, nil
}
