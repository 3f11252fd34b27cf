package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoAV = types.AttributeValue

func stringAV(s string) dynamoAV {
	return &types.AttributeValueMemberS{Value: s}
}

func purchaseKey(reference string) map[string]dynamoAV {
	return map[string]dynamoAV{"purchaseID": stringAV(reference)}
}

func userKey(userID string) map[string]dynamoAV {
	return map[string]dynamoAV{"userID": stringAV(userID)}
}

func ticketKey(ticketID string) map[string]dynamoAV {
	return map[string]dynamoAV{"ticketID": stringAV(ticketID)}
}
