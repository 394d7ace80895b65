package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/crypto"
	"unitconv/internal/store"
)

// keyCmd groups the API-key subcommands. They only touch the keystore.
func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "key",
		Short:       "Manage the encrypted exchange-rate API key",
		Annotations: map[string]string{"wiring": "none"},
	}
	cmd.AddCommand(keySetCmd(), keyFingerprintCmd(), keyClearCmd())
	return cmd
}

func keyStore() (*store.KeyFileStore, error) {
	dir, err := appCfg.ResolveHome()
	if err != nil {
		return nil, err
	}
	return store.NewKeyFileStore(dir), nil
}

func keySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <api-key>",
		Short: "Encrypt and store the API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCfg.Passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			keys, err := keyStore()
			if err != nil {
				return err
			}
			if err := keys.SaveAPIKey(appCfg.Passphrase, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "API key stored.\nFingerprint: %s\n", crypto.Fingerprint([]byte(strings.TrimSpace(args[0]))))
			return nil
		},
	}
}

func keyFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCfg.Passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			keys, err := keyStore()
			if err != nil {
				return err
			}
			k, err := keys.LoadAPIKey(appCfg.Passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint([]byte(k)))
			return nil
		},
	}
}

func keyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := keyStore()
			if err != nil {
				return err
			}
			if err := keys.DeleteAPIKey(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
			return nil
		},
	}
}
