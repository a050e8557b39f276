// Package result defines the values a sync action handler returns and the
// canonical JSON encoding written for them.
package result

import "fmt"

// Status values carried by every sync action result
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Token is implemented by enumerated field types. The encoder writes the
// token instead of the underlying representation.
type Token interface {
	Token() string
}

// Field is one named value of a structured result
type Field struct {
	Name  string
	Value any
}

// SyncActionResult is a structured value a handler may return. Fields are
// encoded in order, followed by the status.
type SyncActionResult interface {
	Fields() []Field
	ResultStatus() string
	MarshalJSON() ([]byte, error)
}

// Base carries the status shared by all results. The zero value reports
// StatusSuccess.
type Base struct {
	Status string
}

// ResultStatus returns the status, defaulting to success
func (b Base) ResultStatus() string {
	if b.Status == "" {
		return StatusSuccess
	}
	return b.Status
}

// SetStatus overrides the status written with the result
func (b *Base) SetStatus(status string) {
	b.Status = status
}

// MessageType is the severity of a validation message
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageDanger
)

var messageTypeTokens = map[MessageType]string{
	MessageInfo:    "info",
	MessageSuccess: "success",
	MessageWarning: "warning",
	MessageDanger:  "danger",
}

// Token returns the wire token of the message type
func (t MessageType) Token() string {
	if token, ok := messageTypeTokens[t]; ok {
		return token
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

func (t MessageType) String() string {
	return t.Token()
}

// MarshalText writes the token wherever a MessageType is encoded, including
// nested values and plain mappings
func (t MessageType) MarshalText() ([]byte, error) {
	return []byte(t.Token()), nil
}

// UnmarshalText parses a token
func (t *MessageType) UnmarshalText(text []byte) error {
	parsed, err := ParseMessageType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseMessageType parses a wire token into a MessageType
func ParseMessageType(s string) (MessageType, error) {
	for t, token := range messageTypeTokens {
		if token == s {
			return t, nil
		}
	}
	return MessageInfo, fmt.Errorf("unknown message type: %q", s)
}

// ValidationResult reports a validation message with a severity
type ValidationResult struct {
	Base
	Message string
	Type    MessageType
}

// NewValidationResult creates a validation result with success status
func NewValidationResult(message string, messageType MessageType) *ValidationResult {
	return &ValidationResult{Message: message, Type: messageType}
}

func (r ValidationResult) Fields() []Field {
	return []Field{
		{Name: "message", Value: r.Message},
		{Name: "type", Value: r.Type},
	}
}

func (r ValidationResult) MarshalJSON() ([]byte, error) {
	return encodeResult(r)
}

// SelectElement is one option of a UI select element. When Label is empty
// the value is used.
type SelectElement struct {
	Base
	Value string
	Label string
}

// NewSelectElement creates a select option. An empty label defaults to value.
func NewSelectElement(value, label string) *SelectElement {
	return &SelectElement{Value: value, Label: label}
}

// Fields omits value and label when they are empty
func (e SelectElement) Fields() []Field {
	label := e.Label
	if label == "" {
		label = e.Value
	}
	return []Field{
		{Name: "value", Value: optional(e.Value)},
		{Name: "label", Value: optional(label)},
	}
}

// optional maps an empty string to nil, which the encoder skips
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (e SelectElement) MarshalJSON() ([]byte, error) {
	return encodeResult(e)
}

// Record is a free-form structured result with ordered fields
type Record struct {
	Base
	fields []Field
}

// NewRecord creates an empty record
func NewRecord() *Record {
	return &Record{}
}

// Set adds a field, or replaces the value of an existing one in place
func (r *Record) Set(name string, value any) *Record {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = value
			return r
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
	return r
}

func (r Record) Fields() []Field {
	fields := make([]Field, len(r.fields))
	copy(fields, r.fields)
	return fields
}

func (r Record) MarshalJSON() ([]byte, error) {
	return encodeResult(r)
}

// Results is a sequence of results, encoded as a JSON array
type Results []SyncActionResult

func (rs Results) MarshalJSON() ([]byte, error) {
	return encodeSequence(rs)
}
