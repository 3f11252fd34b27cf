package dynamo

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

// conditionFailed reports whether err is a failed condition expression.
func conditionFailed(err error) bool {
	var cond *types.ConditionalCheckFailedException
	return errors.As(err, &cond)
}

// storeError wraps any other SDK failure as a store availability error.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", errs.ErrStoreUnavailable, op, err)
}
