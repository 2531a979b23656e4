package stack

const (
	logMsgPushRejected   = "push rejected"
	logMsgPopRejected    = "pop rejected"
	logMsgTopRejected    = "top rejected"
	logMsgExtended       = "stack extended"
	logMsgExtendRejected = "extend rejected"
	logAttrStackID       = "stack_id"
	logAttrError         = "error"
	logAttrLength        = "length"
	logAttrMaxLength     = "max_length"
	logAttrNewLength     = "new_length"
)

// logDebug logs at debug level, tagged with the stack ID, if the logger is configured.
func (c config) logDebug(message string, args ...any) {
	if c.logger != nil {
		allArgs := []any{logAttrStackID, c.id.String()}
		allArgs = append(allArgs, args...)
		c.logger.Debug(message, allArgs...)
	}
}

// logRejected logs an operation that failed with err.
func (c config) logRejected(message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)
	c.logDebug(message, allArgs...)
}
