package main

import (
	"context"
	"encoding/json"
	"fmt"

	"collectioneer/internal/adapters/db"
	"collectioneer/internal/ports/inbound"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	userEmail    string
	userUsername string
	userName     string
	userPassword string

	communityName        string
	communityDescription string
	communityFounder     string

	collectibleName        string
	collectibleDescription string
	collectibleCommunity   string
	collectibleOwner       string
	collectibleValue       float64
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, svc *services) (interface{}, error) {
			return svc.users.RegisterNewUser(ctx, inbound.RegisterUserCommand{
				Email:    userEmail,
				Username: userUsername,
				Name:     userName,
				Password: userPassword,
			})
		})
	},
}

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Manage communities",
}

var communityCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a community with its founder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		founderID, err := parseIDFlag("founder", communityFounder)
		if err != nil {
			return err
		}
		return withServices(cmd, func(ctx context.Context, svc *services) (interface{}, error) {
			return svc.communities.CreateNewCommunity(ctx, inbound.CreateCommunityCommand{
				Name:        communityName,
				Description: communityDescription,
				UserID:      founderID,
			})
		})
	},
}

var collectibleCmd = &cobra.Command{
	Use:   "collectible",
	Short: "Manage collectibles",
}

var collectibleRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a collectible in a community",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		communityID, err := parseIDFlag("community", collectibleCommunity)
		if err != nil {
			return err
		}
		ownerID, err := parseIDFlag("owner", collectibleOwner)
		if err != nil {
			return err
		}
		return withServices(cmd, func(ctx context.Context, svc *services) (interface{}, error) {
			return svc.collectibles.RegisterCollectible(ctx, inbound.RegisterCollectibleCommand{
				Name:        collectibleName,
				Description: collectibleDescription,
				CommunityID: communityID,
				OwnerID:     ownerID,
				Value:       collectibleValue,
			})
		})
	},
}

func init() {
	userRegisterCmd.Flags().StringVar(&userEmail, "email", "", "email address")
	userRegisterCmd.Flags().StringVar(&userUsername, "username", "", "public username")
	userRegisterCmd.Flags().StringVar(&userName, "name", "", "display name")
	userRegisterCmd.Flags().StringVar(&userPassword, "password", "", "password")
	_ = userRegisterCmd.MarkFlagRequired("email")
	_ = userRegisterCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userRegisterCmd)

	communityCreateCmd.Flags().StringVar(&communityName, "name", "", "community name")
	communityCreateCmd.Flags().StringVar(&communityDescription, "description", "", "community description")
	communityCreateCmd.Flags().StringVar(&communityFounder, "founder", "", "id of the founding user")
	_ = communityCreateCmd.MarkFlagRequired("name")
	_ = communityCreateCmd.MarkFlagRequired("founder")
	communityCmd.AddCommand(communityCreateCmd)

	collectibleRegisterCmd.Flags().StringVar(&collectibleName, "name", "", "collectible name")
	collectibleRegisterCmd.Flags().StringVar(&collectibleDescription, "description", "", "collectible description")
	collectibleRegisterCmd.Flags().StringVar(&collectibleCommunity, "community", "", "id of the owning community")
	collectibleRegisterCmd.Flags().StringVar(&collectibleOwner, "owner", "", "id of the owning user")
	collectibleRegisterCmd.Flags().Float64Var(&collectibleValue, "value", 0, "estimated value")
	_ = collectibleRegisterCmd.MarkFlagRequired("name")
	_ = collectibleRegisterCmd.MarkFlagRequired("community")
	_ = collectibleRegisterCmd.MarkFlagRequired("owner")
	collectibleCmd.AddCommand(collectibleRegisterCmd)
}

// withServices runs fn against the database and prints its result as JSON
func withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *services) (interface{}, error)) error {
	ctx := cmd.Context()

	conn, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	result, err := fn(ctx, newServices(db.NewRepositoryFactory(conn).GetAllRepositories(), nil))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func parseIDFlag(name, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --%s id %q: %w", name, value, err)
	}
	return id, nil
}
