package main

import (
	"fmt"
	"time"

	"github.com/guibecker772/advisor-control/internal/utils"
	"github.com/spf13/cobra"
)

var tokenTTL time.Duration

// tokenCMD signs a bearer token for local development. Production tokens come
// from the identity provider.
var tokenCMD = &cobra.Command{
	Use:   "token <advisor-id>",
	Short: "Sign a development bearer token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		if cfg.IsProduction {
			return fmt.Errorf("refusing to sign tokens in production")
		}
		token, err := utils.GenerateJWT(args[0], cfg.JWTSecret, tokenTTL, cfg.JWTIssuer)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCMD.Flags().DurationVar(&tokenTTL, "ttl", 12*time.Hour, "token lifetime")
}
