package credentials

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// SessionTokenAPI is the slice of STS used to read a temporary session's
// expiration.
type SessionTokenAPI interface {
	GetSessionToken(ctx context.Context, input *sts.GetSessionTokenInput, opts ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error)
}
