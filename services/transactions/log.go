package transactions

import (
	"context"
	"sync"

	"github.com/MarcGrol/cloverconnect/services/posapi"
)

// Log is an append-only, process-lifetime record of completed payments.
type Log struct {
	sync.Mutex
	records []posapi.Transaction
}

func NewLog() *Log {
	return &Log{
		records: []posapi.Transaction{},
	}
}

func (l *Log) Record(c context.Context, tx posapi.Transaction) {
	l.Lock()
	defer l.Unlock()

	l.records = append(l.records, tx)
}

// List returns a copy in insertion order.
func (l *Log) List(c context.Context) []posapi.Transaction {
	l.Lock()
	defer l.Unlock()

	result := make([]posapi.Transaction, len(l.records))
	copy(result, l.records)

	return result
}
