package review

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrReplyIsNotConstructed = errors.New("Reply must be created via NewReply")

// Reply is the shop's public answer to a review. A review has at most one.
type Reply struct {
	content   string
	staffID   kernel.UUID
	repliedAt time.Time

	isConstructed bool
}

func NewReply(staffID kernel.UUID, content string, at time.Time) (Reply, error) {
	content = strings.TrimSpace(content)
	var contentErr error
	if content == "" {
		contentErr = errs.NewValueIsRequiredError("content")
	}
	if err := errors.Join(staffID.Validate(), contentErr); err != nil {
		return Reply{}, err
	}
	return Reply{content: content, staffID: staffID, repliedAt: at, isConstructed: true}, nil
}

func (r Reply) Validate() error {
	if !r.isConstructed {
		return ErrReplyIsNotConstructed
	}
	return nil
}

func (r Reply) Content() string      { return r.content }
func (r Reply) StaffID() kernel.UUID { return r.staffID }
func (r Reply) RepliedAt() time.Time { return r.repliedAt }
