// Package jsonl loads Buffers from JSON Lines data. This parser uses https://github.com/tidwall/gjson to process data, and supports extracting each value with a gjson path.
package jsonl
