package fixtures

// RecordingRegistry captures command handlers registered through DI.
type RecordingRegistry struct {
	Handlers []any
	err      error
}

// NewRecordingRegistry constructs an empty registry recorder.
func NewRecordingRegistry() *RecordingRegistry {
	return &RecordingRegistry{
		Handlers: make([]any, 0),
	}
}

// Fail makes every following RegisterCommand call return err.
func (r *RecordingRegistry) Fail(err error) {
	r.err = err
}

// RegisterCommand records handler unless a failure was configured.
func (r *RecordingRegistry) RegisterCommand(handler any) error {
	if r.err != nil {
		return r.err
	}
	r.Handlers = append(r.Handlers, handler)
	return nil
}
