package db

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"fretdrill/constants"
	"fretdrill/model"
)

// Store persists practice results in DynamoDB. Items are keyed by
// session id (PK) and result timestamp (SK) and carry the chord name,
// correctness and latency.
type Store struct {
	client *dynamodb.DynamoDB
}

func NewStore() (*Store, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}
	return &Store{client: dynamodb.New(sess)}, nil
}

// Record implements practice.Recorder.
func (s *Store) Record(r model.PracticeResult) error {
	item := map[string]*dynamodb.AttributeValue{
		"PK":        {S: aws.String(r.SessionID)},
		"SK":        {N: aws.String(strconv.FormatInt(r.At.UnixMilli(), 10))},
		"Chord":     {S: aws.String(r.Chord)},
		"Correct":   {BOOL: aws.Bool(r.Correct)},
		"LatencyMs": {N: aws.String(strconv.FormatInt(r.Latency.Milliseconds(), 10))},
	}
	_, err := s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.GetStatsTable()),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("could not put practice result: %w", err)
	}
	return nil
}

// GetSessionStats reads every recorded answer for a session back out
// and aggregates it per chord name.
func (s *Store) GetSessionStats(sessionID string) (map[string]model.TriadStats, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(constants.GetStatsTable()),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(sessionID)},
		},
	}
	out, err := s.client.Query(input)
	if err != nil {
		return nil, fmt.Errorf("could not query practice results: %w", err)
	}

	res := make(map[string]model.TriadStats)
	for _, item := range out.Items {
		if item["Chord"] == nil || item["Chord"].S == nil {
			continue
		}
		chord := *item["Chord"].S
		st := res[chord]
		st.Attempts++
		if item["Correct"] != nil && item["Correct"].BOOL != nil && *item["Correct"].BOOL {
			st.Correct++
		}
		if item["LatencyMs"] != nil && item["LatencyMs"].N != nil {
			ms, _ := strconv.ParseInt(*item["LatencyMs"].N, 10, 64)
			st.TotalLatencyMs += ms
		}
		res[chord] = st
	}
	return res, nil
}
