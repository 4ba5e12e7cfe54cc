package log

// Tagged binds one tag to a Logger, the way callers keep a per-type TAG
// constant and pass it to every call.
type Tagged struct {
	logger Logger
	tag    string
}

// NewTagged returns a Tagged writing through logger. A nil logger uses the
// package's stdout shim.
func NewTagged(logger Logger, tag string) Tagged {
	if logger == nil {
		logger = std
	}
	return Tagged{logger: logger, tag: tag}
}

// Tag returns the bound tag.
func (t Tagged) Tag() string { return t.tag }

func (t Tagged) Debug(msg string) int { return t.logger.Debug(t.tag, msg) }
func (t Tagged) Info(msg string) int  { return t.logger.Info(t.tag, msg) }
func (t Tagged) Warn(msg string) int  { return t.logger.Warn(t.tag, msg) }
func (t Tagged) Error(msg string) int { return t.logger.Error(t.tag, msg) }
