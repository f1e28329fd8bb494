package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		secret  string
		issuer  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token allowed to create and solve mazes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return errors.New("no signing secret: set JWT_SECRET or pass --secret")
			}
			jwt, err := token.NewJwtService(secret, issuer).Generate(subject, []string{dmn.ScopeMazesWrite}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), jwt)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&subject, "subject", "mazectl", "Subject claim of the token")
	flags.DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	flags.StringVar(&secret, "secret", config.Envs.JWTSecret, "Signing secret (defaults to JWT_SECRET)")
	flags.StringVar(&issuer, "issuer", config.Envs.JWTIssuer, "Issuer claim (defaults to JWT_ISSUER)")
	return cmd
}
