package constants

import "os"

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetStatsTable() string {
	table := os.Getenv("STATS_TABLE")
	if table != "" {
		return table
	}
	return "fretdrill-practice"
}

// MaxFretLimit is the practical ceiling on fret numbers for any
// instrument we model.
const MaxFretLimit = 24

const DefaultMaxFret = 12

const DefaultVoicingCount = 3
