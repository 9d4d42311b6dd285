package model

import "coursectl/pkg/logging"

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}

// PanelMsg is the completion of one panel request cycle. MountEpoch names
// the panel instance that issued it.
type PanelMsg interface {
	Epoch() int
	// Failure is the error the request ended with, nil on success.
	Failure() error
}

// LoadedMsg completes Load.
type LoadedMsg[T any] struct {
	MountEpoch int
	Items      []T
	Err        error
}

func (m LoadedMsg[T]) Epoch() int { return m.MountEpoch }
func (m LoadedMsg[T]) Failure() error { return m.Err }

// CreatedMsg completes Create.
type CreatedMsg[T any] struct {
	MountEpoch int
	Item       T
	Err        error
}

func (m CreatedMsg[T]) Epoch() int { return m.MountEpoch }
func (m CreatedMsg[T]) Failure() error { return m.Err }

// RemovedMsg completes Remove.
type RemovedMsg[T any] struct {
	MountEpoch int
	ID         string
	Err        error
}

func (m RemovedMsg[T]) Epoch() int { return m.MountEpoch }
func (m RemovedMsg[T]) Failure() error { return m.Err }

// LookedUpMsg completes Lookup.
type LookedUpMsg[T any] struct {
	MountEpoch int
	ID         string
	Item       T
	Err        error
}

func (m LookedUpMsg[T]) Epoch() int { return m.MountEpoch }
func (m LookedUpMsg[T]) Failure() error { return m.Err }
