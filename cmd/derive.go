package cmd

import (
	"fmt"

	"favorites-tx/internal/favorites"
	"favorites-tx/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

// deriveCmd prints the favorites account a public key writes to.
var deriveCmd = &cobra.Command{
	Use:   "derive <publicKey>",
	Short: "print the favorites PDA for a public key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := wallet.ParsePublicKey(args[0])
		if err != nil {
			return err
		}

		programID := favorites.DefaultProgramID
		if p, _ := cmd.Flags().GetString("program"); p != "" {
			programID, err = solana.PublicKeyFromBase58(p)
			if err != nil {
				return fmt.Errorf("invalid program address: %w", err)
			}
		} else if c, err := tryLoadConfig(cfgFile); err == nil {
			programID, err = solana.PublicKeyFromBase58(c.Chain.ProgramAddress)
			if err != nil {
				return fmt.Errorf("invalid program address in %s: %w", cfgFile, err)
			}
		}

		pda, bump, err := favorites.DeriveAddress(programID, user)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "program:   %s\nuser:      %s\nfavorites: %s\nbump:      %d\n", programID, user, pda, bump)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().StringP("program", "p", "", "program address, overrides the config file")
}
