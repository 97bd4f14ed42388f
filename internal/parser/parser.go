// Package parser turns raw JSON text into the in-memory value the outline
// transform operates on, and narrows documents with JSONPath expressions.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/theory/jsonpath"

	"github.com/mcncl/ontoline/internal/errors"
	"github.com/mcncl/ontoline/internal/models"
)

// Parse decodes a single JSON value from an io.Reader. Numbers are decoded
// as json.Number so that re-serialized output preserves the original
// notation.
func Parse(reader io.Reader) (models.JSONValue, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var root models.JSONValue
	if err := decoder.Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		var typeError *json.UnmarshalTypeError
		if stderrors.As(err, &typeError) {
			return nil, errors.NewParsingError(
				fmt.Sprintf("JSON type error at offset %d for type %s", typeError.Offset, typeError.Type),
				errors.ErrInvalidJSON,
			)
		}
		return nil, errors.NewParsingError("failed to decode JSON", err)
	}

	// Anything after the first value besides whitespace is rejected: a
	// document holds exactly one root.
	if decoder.More() {
		var trailing models.JSONValue
		if err := decoder.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	return root, nil
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.JSONValue, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.JSONValue, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}

// Select narrows a parsed document to the first value matched by a JSONPath
// expression such as "$.user.profile" or "$..items[0]".
func Select(root models.JSONValue, expr string) (models.JSONValue, error) {
	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, errors.NewSelectError(fmt.Sprintf("invalid JSONPath expression '%s'", expr), err)
	}

	results := path.Select(root)
	if len(results) == 0 {
		return nil, errors.NewSelectError(
			fmt.Sprintf("JSONPath '%s' matched no value", expr),
			errors.ErrPathNotFound,
		)
	}
	return results[0], nil
}

// ReadSourceFile loads the plain-text source document that outline values
// are matched against. The text is returned as-is, without normalization.
func ReadSourceFile(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", errors.NewInputError("source file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("source file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read source file '%s'", filePath),
			err,
		)
	}
	return string(data), nil
}
