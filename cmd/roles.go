package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/logger"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage the role catalog",
}

var rolesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Interactively add a role to the catalog",
	Run: func(_ *cobra.Command, _ []string) {
		rolesAdd()
	},
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the role catalog",
	Run: func(_ *cobra.Command, _ []string) {
		rolesList()
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.AddCommand(rolesAddCmd)
	rolesCmd.AddCommand(rolesListCmd)
}

func rolesAdd() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st, err := store.Open(ctx, config.DatabaseURL(), config.Roles(), logger)
	if err != nil {
		logger.Fatal("opening the role store", zap.Error(err))
	}
	defer st.Close()

	role, err := promptRole()
	if err != nil {
		logger.Fatal("reading role input", zap.Error(err))
	}

	confirm := promptui.Select{
		Label: fmt.Sprintf("Add role %q with %d required skills?", role.Title, len(role.RequiredSkills)),
		Items: []string{PromptYes, PromptNo},
	}
	_, answer, err := confirm.Run()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
	if answer != PromptYes {
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return
	}

	added, err := st.Append(ctx, role)
	if err != nil {
		logger.Fatal("adding role", zap.Error(err))
	}

	logger.Info("role added", zap.String("id", added.ID), zap.String("title", added.Title))
}

func promptRole() (roles.Definition, error) {
	var role roles.Definition

	titlePrompt := promptui.Prompt{
		Label: "Role title",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("title must not be empty")
			}
			return nil
		},
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return role, err
	}
	role.Title = strings.TrimSpace(title)

	descriptionPrompt := promptui.Prompt{Label: "Description (optional)"}
	description, err := descriptionPrompt.Run()
	if err != nil {
		return role, err
	}
	role.Description = strings.TrimSpace(description)

	tagsPrompt := promptui.Prompt{Label: "Tags (comma-separated, e.g. government,banking)"}
	tags, err := tagsPrompt.Run()
	if err != nil {
		return role, err
	}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(strings.ToLower(tag)); tag != "" {
			role.Tags = append(role.Tags, tag)
		}
	}

	for {
		skillPrompt := promptui.Prompt{Label: "Required skill (empty to finish)"}
		skill, err := skillPrompt.Run()
		if err != nil {
			return role, err
		}
		if skill = strings.TrimSpace(strings.ToLower(skill)); skill == "" {
			break
		}

		weightPrompt := promptui.Prompt{
			Label:   "Weight",
			Default: "1",
			Validate: func(s string) error {
				_, err := strconv.ParseFloat(s, 64)
				return err
			},
		}
		weightRaw, err := weightPrompt.Run()
		if err != nil {
			return role, err
		}
		weight, _ := strconv.ParseFloat(weightRaw, 64)

		role.RequiredSkills = append(role.RequiredSkills, roles.RequiredSkill{
			Skill:  skill,
			Weight: weight,
		})
	}

	return role, nil
}

func rolesList() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	st, err := store.Open(ctx, config.DatabaseURL(), config.Roles(), logger)
	if err != nil {
		logger.Fatal("opening the role store", zap.Error(err))
	}
	defer st.Close()

	catalog, err := st.List(ctx)
	if err != nil {
		logger.Fatal("listing roles", zap.Error(err))
	}

	for _, role := range catalog {
		fmt.Printf("%s [%s]\n", role.Title, strings.Join(role.Tags, ", "))
		for _, req := range role.RequiredSkills {
			weight := req.Weight
			if weight <= 0 {
				weight = 1
			}
			fmt.Printf("  - %s (weight %g)\n", req.Skill, weight)
		}
	}
}
