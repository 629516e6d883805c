package pipeline

import "sync"

// RenameLedger tracks target paths claimed by candidates during one run, so
// two candidates never get the same target. In a dry run nothing lands on
// disk to collide with and the ledger is the only guard. All methods are
// goroutine-safe.
type RenameLedger struct {
	mu     sync.Mutex
	owners map[string]string // target path → source path that claimed it
}

// NewRenameLedger creates a ready-to-use ledger.
func NewRenameLedger() *RenameLedger {
	return &RenameLedger{owners: make(map[string]string)}
}

// Claim records that source will be renamed to target. It returns the
// previous owner and false when another source already holds target.
func (l *RenameLedger) Claim(source, target string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	owner, exists := l.owners[target]
	if exists && owner != source {
		return owner, false
	}
	l.owners[target] = source
	return source, true
}

// Release drops a claim, used when the rename it was made for failed.
func (l *RenameLedger) Release(target string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.owners, target)
}
