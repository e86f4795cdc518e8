package messagesrepo

import (
	"fmt"
	"sync"
	"time"

	"github.com/zestagio/chat-relay/internal/store"
)

const defaultAppendTimeout = 5 * time.Second

//go:generate options-gen -out-filename=repo_options.gen.go -from-struct=Options
type Options struct {
	db            *store.Client    `option:"mandatory" validate:"required"`
	clock         func() time.Time `validate:"required"`
	appendTimeout time.Duration    `validate:"min=10ms,max=1m"`
}

type Repo struct {
	Options

	mu          sync.Mutex
	lastCreated time.Time
}

func New(opts Options) (*Repo, error) {
	if opts.clock == nil {
		opts.clock = time.Now
	}
	if opts.appendTimeout == 0 {
		opts.appendTimeout = defaultAppendTimeout
	}

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	return &Repo{Options: opts}, nil
}

// nextCreatedAt returns a timestamp strictly greater than any returned before.
// Equal clock readings are bumped by one microsecond, the finest precision Postgres keeps.
func (r *Repo) nextCreatedAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.clock().UTC().Truncate(time.Microsecond)
	if !t.After(r.lastCreated) {
		t = r.lastCreated.Add(time.Microsecond)
	}
	r.lastCreated = t
	return t
}
