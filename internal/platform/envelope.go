package platform

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Accepted field names for the creation arguments, in priority order.
var (
	createArgAliases = []string{"createArg", "create_arg", "arg", "create_args"}
	signatureAliases = []string{"signature", "sign", "signatureHex"}
)

// PreparedCreate holds the platform-signed arguments of a createToken call.
type PreparedCreate struct {
	CreateArg []byte
	Signature []byte
}

// unwrapEnvelope checks the {code, data} envelope. An absent, zero or "0" code is success.
// The data member is returned when present, otherwise the whole body.
func unwrapEnvelope(endpoint string, status int, raw []byte) (json.RawMessage, error) {
	var envelope map[string]json.RawMessage
	err := json.Unmarshal(raw, &envelope)
	if err != nil || envelope == nil {
		return raw, nil
	}

	if code, ok := envelope["code"]; ok && !codeOK(code) {
		return nil, &ResponseError{Endpoint: endpoint, StatusCode: status, Code: codeString(code), Body: truncate(raw)}
	}

	if data, ok := envelope["data"]; ok && !isNull(data) {
		return data, nil
	}

	return raw, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func codeOK(raw json.RawMessage) bool {
	if isNull(raw) {
		return true
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s == "" || s == "0"
	}

	var n float64
	if json.Unmarshal(raw, &n) == nil {
		return n == 0
	}

	var b bool
	if json.Unmarshal(raw, &b) == nil {
		return !b
	}

	return false
}

func codeString(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}

	return string(bytes.TrimSpace(raw))
}

func decodeString(endpoint string, data json.RawMessage) (string, error) {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		var n json.Number
		if json.Unmarshal(data, &n) != nil {
			return "", errors.Join(ErrUnexpectedResponseShape, fmt.Errorf("%s: expected a string, got %s", endpoint, truncate(data)))
		}
		s = n.String()
	}

	if strings.TrimSpace(s) == "" {
		return "", errors.Join(ErrUnexpectedResponseShape, fmt.Errorf("%s: empty value", endpoint))
	}

	return s, nil
}

func parsePreparedCreate(data json.RawMessage) (*PreparedCreate, error) {
	var fields map[string]json.RawMessage
	err := json.Unmarshal(data, &fields)
	if err != nil || fields == nil {
		return nil, errors.Join(ErrUnexpectedResponseShape, fmt.Errorf("%s: expected an object, got %s", endpointCreate, truncate(data)))
	}

	createArgHex := firstAlias(fields, createArgAliases)
	signatureHex := firstAlias(fields, signatureAliases)

	if createArgHex == "" || signatureHex == "" {
		keys := slices.Sorted(maps.Keys(fields))

		return nil, errors.Join(ErrUnexpectedResponseShape, fmt.Errorf("%s: creation argument or signature missing, got keys %v", endpointCreate, keys))
	}

	createArg, err := decodeHex(createArgHex)
	if err != nil {
		return nil, errors.Join(ErrUnexpectedResponseShape, fmt.Errorf("invalid creation argument: %w", err))
	}

	signature, err := decodeHex(signatureHex)
	if err != nil {
		return nil, errors.Join(ErrUnexpectedResponseShape, fmt.Errorf("invalid signature: %w", err))
	}

	return &PreparedCreate{CreateArg: createArg, Signature: signature}, nil
}

func firstAlias(fields map[string]json.RawMessage, aliases []string) string {
	for _, alias := range aliases {
		raw, ok := fields[alias]
		if !ok {
			continue
		}

		var s string
		if json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}

	return ""
}

func decodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	return hexutil.Decode(s)
}
