package rpcclient

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"go.stakescope.io/stakescope/pkg/stakepool"
)

// GetAccountData fetches an account's raw data at finalized commitment.
func (fetcher *Client) GetAccountData(ctx context.Context, pubkey solana.PublicKey) ([]byte, error) {
	result, err := fetcher.client.GetAccountInfoWithOpts(
		ctx,
		pubkey,
		&rpc.GetAccountInfoOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return nil, err
	}
	if result.Value == nil {
		return nil, fmt.Errorf("account %s not found", pubkey)
	}

	return result.Value.Data.GetBinary(), nil
}

// GetStakePool fetches and decodes a stake pool state account.
func (fetcher *Client) GetStakePool(ctx context.Context, pool solana.PublicKey) (*stakepool.StakePool, error) {
	data, err := fetcher.GetAccountData(ctx, pool)
	if err != nil {
		return nil, err
	}
	return stakepool.DecodeStakePool(data)
}

// GetValidatorList fetches and decodes a validator list account.
func (fetcher *Client) GetValidatorList(ctx context.Context, list solana.PublicKey) (*stakepool.ValidatorList, error) {
	data, err := fetcher.GetAccountData(ctx, list)
	if err != nil {
		return nil, err
	}
	return stakepool.DecodeValidatorList(data)
}

// GetPoolValidatorList fetches a pool's state account and follows its
// validator list address.
func (fetcher *Client) GetPoolValidatorList(ctx context.Context, pool solana.PublicKey) (*stakepool.ValidatorList, error) {
	state, err := fetcher.GetStakePool(ctx, pool)
	if err != nil {
		return nil, err
	}
	return fetcher.GetValidatorList(ctx, state.ValidatorList)
}
