package domain

// FieldErrors maps form field names to user-facing messages. A non-empty map
// keeps the user on the form; it never reaches the network.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for field, msg := range e {
		return field + ": " + msg
	}
	return "dados inválidos"
}
