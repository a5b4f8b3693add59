package codecapi

// AddressInfo address info
type AddressInfo struct {
	Address   string `json:"address"`
	AccountID string `json:"accountId"`
}

// ValidateResult address validation result
type ValidateResult struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}

// SeedInfo seed info
type SeedInfo struct {
	Seed    string `json:"seed"`
	Type    string `json:"type"`
	Version string `json:"version"`
	Entropy string `json:"entropy"`
}

// EncodedInfo encoded payload info
type EncodedInfo struct {
	Kind     string `json:"kind"`
	Encoded  string `json:"encoded"`
	Version  string `json:"version"`
	Payload  string `json:"payload"`
	SeedType string `json:"seedType,omitempty"`
}

// EncodeArgs encode args
type EncodeArgs struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

// DecodeArgs decode args
type DecodeArgs struct {
	Kind    string `json:"kind"`
	Encoded string `json:"encoded"`
}

// EncodeSeedArgs encode seed args
type EncodeSeedArgs struct {
	Entropy string `json:"entropy"`
	Type    string `json:"type"`
}
