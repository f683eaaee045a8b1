// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/lexer"
	"github.com/hyperknf/HydroScript/internal/parser"
	"github.com/hyperknf/HydroScript/internal/token"
)

const PROMPT = ">> "

// CONTINUE is shown while a brace opened on an earlier line is still open
const CONTINUE = ".. "

const replFile = "<repl>"

// Start reads HydroScript from in until EOF. Each complete entry is parsed
// and its tree printed back in source form, or its error reported.
func Start(in io.Reader, out io.Writer, opts parser.Options) {
	scanner := bufio.NewScanner(in)
	var pending []string

	for {
		if len(pending) == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUE)
		}

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		pending = append(pending, scanner.Text())
		source := strings.Join(pending, "\n")
		if strings.TrimSpace(source) == "" {
			pending = nil
			continue
		}
		if unclosed(source) {
			continue
		}
		pending = nil

		program, err := parser.ParseSourceWithOptions(replFile, source, opts)
		if err != nil {
			fmt.Fprint(out, errors.NewErrorReporter(replFile, source).Report(err))
			continue
		}

		fmt.Fprint(out, program.String())
	}
}

// unclosed reports whether source opens more curly brackets than it closes.
// Source that fails to tokenize is treated as complete so the error surfaces.
func unclosed(source string) bool {
	tokens, err := lexer.Tokenize(replFile, source)
	if err != nil {
		return false
	}

	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case token.OpenCurlyBracket:
			depth++
		case token.CloseCurlyBracket:
			depth--
		}
	}
	return depth > 0
}
