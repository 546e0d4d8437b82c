package ramledger

const (
	// MintBaseCost is the RAM consumed by one minted asset row.
	MintBaseCost int64 = 151

	// ScopeCost is the extra RAM consumed when the recipient has no asset scope yet.
	ScopeCost int64 = 112
)

// MintCost estimates the RAM needed to mint one asset to a recipient.
func MintCost(recipientHasAssets bool) int64 {
	if recipientHasAssets {
		return MintBaseCost
	}

	return MintBaseCost + ScopeCost
}
