// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/ratemyanything/auth"
)

func newTokenCmd() *cobra.Command {
	var username, secret string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token --username NAME",
		Short: "Mint a bearer token for deleting reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("JWT_SECRET required (env or --secret)")
			}

			token, err := auth.IssueToken(username, secret, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&username, "username", "u", "", "Username the token identifies (required)")
	flags.StringVar(&secret, "secret", "", "Signing secret (default: $JWT_SECRET)")
	flags.DurationVar(&ttl, "ttl", auth.DefaultTokenTTL, "Token lifetime")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
