package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/swipe-match/internal/repository"
	"github.com/oggyb/swipe-match/internal/swipe"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid state", fmt.Errorf("%w: not head", swipe.ErrInvalidState), codes.FailedPrecondition},
		{"not found", swipe.ErrNotFound, codes.NotFound},
		{"gorm not found", gorm.ErrRecordNotFound, codes.NotFound},
		{"store down", swipe.Unavailable("load", fmt.Errorf("dial tcp: refused")), codes.Unavailable},
		{"cancelled", swipe.Unavailable("load", context.Canceled), codes.Canceled},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"duplicate", repository.ErrDuplicate, codes.AlreadyExists},
		{"other", fmt.Errorf("boom"), codes.Internal},
		{"already a status", InvalidArgument("bad"), codes.InvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.Code(Map(tc.err)))
		})
	}
	assert.NoError(t, Map(nil))
}
