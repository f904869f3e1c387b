package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/jonathan/career-advisor/internal/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the career advisor",
	Long:  "Starts an interactive conversation on stdin. An optional profile personalizes the replies. Type 'exit' to quit, 'summary' for conversation analytics, 'reset' to start over.",
	RunE:  runChat,
}

var (
	chatProfile string
	chatSeed    int64
)

func init() {
	chatCmd.Flags().StringVarP(&chatProfile, "profile", "p", "", "Path to a user profile JSON file")
	chatCmd.Flags().Int64Var(&chatSeed, "seed", 0, "Seed for template selection (0 = random)")

	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var context *types.ChatContext
	if chatProfile != "" {
		profile, err := loadProfile(chatProfile)
		if err != nil {
			return err
		}
		context = &types.ChatContext{
			ExperienceLevel: profile.ExperienceLevel,
			Skills:          profile.Skills,
			Interests:       profile.Interests,
		}
	}

	session := chat.NewStore(cat, chatSeed).Session("")
	fmt.Println("Career Advisor chat. Type 'exit' to quit, 'summary' for analytics, 'reset' to start over.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())

		switch message {
		case "":
			continue
		case "exit", "quit":
			return scanner.Err()
		case "summary":
			summary := session.Summary()
			fmt.Printf("Messages: %d (yours: %d)\n", summary.TotalMessages, summary.UserMessages)
			if len(summary.IntentsDiscussed) > 0 {
				names := make([]string, len(summary.IntentsDiscussed))
				for i, intent := range summary.IntentsDiscussed {
					names[i] = intent.String()
				}
				fmt.Printf("Topics: %s\n", strings.Join(names, ", "))
			}
			continue
		case "reset":
			session.Reset()
			fmt.Println("Conversation reset.")
			continue
		}

		fmt.Println(session.ProcessMessage(message, context))
		// Context is merged into the session on the first message
		context = nil
	}

	return scanner.Err()
}
