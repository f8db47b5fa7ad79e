// Package inspect implements the account inspection subcommands: fetch a
// stake pool account (or read a raw dump from disk), decode it, and print
// it as JSON.
package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"go.stakescope.io/stakescope/pkg/rpcclient"
	"go.stakescope.io/stakescope/pkg/stakepool"
)

var Cmd = cobra.Command{
	Use:   "inspect",
	Short: "Decode stake pool accounts",
}

var poolCmd = cobra.Command{
	Use:   "pool <address>",
	Short: "Decode a stake pool state account",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPool,
}

var validatorListCmd = cobra.Command{
	Use:   "validator-list <address>",
	Short: "Decode a validator list account",
	Args:  cobra.MaximumNArgs(1),
	Run:   runValidatorList,
}

var (
	flagURL  string
	flagFile string
)

func init() {
	Cmd.PersistentFlags().StringVarP(&flagURL, "url", "u", rpc.MainNetBeta_RPC, "RPC endpoint")
	Cmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "read raw account data from a file instead of RPC")

	Cmd.AddCommand(
		&poolCmd,
		&validatorListCmd,
	)
}

func accountData(ctx context.Context, args []string) ([]byte, error) {
	if flagFile != "" {
		return os.ReadFile(flagFile)
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("an account address is required unless --file is given")
	}
	pubkey, err := solana.PublicKeyFromBase58(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid account address %q: %w", args[0], err)
	}
	return rpcclient.New(flagURL).GetAccountData(ctx, pubkey)
}

func runPool(c *cobra.Command, args []string) {
	data, err := accountData(c.Context(), args)
	if err != nil {
		klog.Exitf("failed to load account data: %s", err)
	}

	pool, err := stakepool.DecodeStakePool(data)
	if err != nil {
		klog.Exitf("failed to decode stake pool: %s", err)
	}

	printJSON(pool)
}

func runValidatorList(c *cobra.Command, args []string) {
	data, err := accountData(c.Context(), args)
	if err != nil {
		klog.Exitf("failed to load account data: %s", err)
	}

	list, err := stakepool.DecodeValidatorList(data)
	if err != nil {
		klog.Exitf("failed to decode validator list: %s", err)
	}

	klog.V(1).Infof("decoded %d of %d validator entries", len(list.Validators), list.MaxValidators)
	printJSON(list)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		klog.Exitf("failed to marshal output: %s", err)
	}
	fmt.Println(string(out))
}
