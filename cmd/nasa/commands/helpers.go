package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/fivetwenty-io/nasa/internal/constants"
	"github.com/fivetwenty-io/nasa/pkg/nasa"
	"github.com/fivetwenty-io/nasa/pkg/nasaclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// Common static errors used throughout the commands package.
var (
	ErrNoAPIKeyConfigured = errors.New(
		"no API key configured (set NASA_API_KEY, pass --api-key, or run 'nasa config set-key')")
	ErrEmptyAPIKey = errors.New("API key must not be empty")
)

// CreateClient builds a library client from the resolved CLI configuration.
func CreateClient() (nasa.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrNoAPIKeyConfigured
	}

	config := &nasa.Config{
		APIKey:         apiKey,
		APIEndpoint:    viper.GetString("api"),
		ImagesEndpoint: viper.GetString("images-api"),
	}

	cli, err := nasaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// OutputPayload renders a payload in the configured output format. Table
// output shows the top-level properties; nested values are inlined as JSON.
func OutputPayload(payload nasa.Payload) error {
	switch viper.GetString("output") {
	case OutputFormatYAML:
		return outputYAML(payload)
	case OutputFormatTable:
		return outputPayloadTable(payload)
	default:
		return outputJSON(payload)
	}
}

func outputJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode response as JSON: %w", err)
	}

	return nil
}

func outputYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode response as YAML: %w", err)
	}

	return nil
}

func outputPayloadTable(payload nasa.Payload) error {
	if len(payload) == 0 {
		_, _ = os.Stdout.WriteString("Empty response\n")

		return nil
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, stringValue(payload[key]))
	}

	_ = table.Render()

	return nil
}

// stringValue renders a decoded JSON value for table cells.
func stringValue(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}

		return string(encoded)
	}
}

// mapField digs a nested object out of a payload, returning nil when the
// shape does not match.
func mapField(payload map[string]interface{}, key string) map[string]interface{} {
	nested, _ := payload[key].(map[string]interface{})

	return nested
}

// sliceField digs a nested array out of a payload.
func sliceField(payload map[string]interface{}, key string) []interface{} {
	nested, _ := payload[key].([]interface{})

	return nested
}

// stringField digs a string out of a payload.
func stringField(payload map[string]interface{}, key string) string {
	nested, _ := payload[key].(string)

	return nested
}
