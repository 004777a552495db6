package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-sif/parsum"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	ValuePath     string // A gjson path locating the value within each line. Defaults to the whole line.
	HeaderLines   int    // The number of lines to ignore from the beginning of the data. Defaults to 0.
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines
}

// Parser produces Buffers from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse is a shorthand for CreateParser(conf).Parse(r)
func Parse(r io.Reader, conf *ParserConf) (*parsum.Buffer, error) {
	return CreateParser(conf).Parse(r)
}

// Parse reads one integer from every non-blank line of r and produces a Buffer from them, in order
func (p *Parser) Parse(r io.Reader) (*parsum.Buffer, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	var values []int64
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= p.conf.HeaderLines {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		v, err := p.parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("Line %d: %w", lineNum, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parsum.NewBuffer(values)
}

func (p *Parser) parseLine(line string) (int64, error) {
	if !gjson.Valid(line) {
		return 0, fmt.Errorf("Invalid JSON: %s", line)
	}
	var res gjson.Result
	if len(p.conf.ValuePath) == 0 {
		res = gjson.Parse(line)
	} else {
		res = gjson.Get(line, p.conf.ValuePath)
		if !res.Exists() {
			return 0, fmt.Errorf("No value at path %s", p.conf.ValuePath)
		}
	}
	if res.Type != gjson.Number {
		return 0, fmt.Errorf("Value %s is not a number", res.Raw)
	}
	v, err := strconv.ParseInt(res.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Value %s is not an int64", res.Raw)
	}
	return v, nil
}
