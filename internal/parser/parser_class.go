package parser

import (
	"fmt"

	"github.com/hyperknf/HydroScript/internal/ast"
	"github.com/hyperknf/HydroScript/internal/errors"
	"github.com/hyperknf/HydroScript/internal/token"
)

// classMemberKinds lists what a class body may hold besides static
// declarations.
var classMemberKinds = []string{"AssignmentExpression", "FunctionLiteral", "Identifier"}

// parseClassLiteral parses "class [Super] { members }".
func (p *Parser) parseClassLiteral() (ast.Expr, error) {
	start, err := p.expect(token.Class)
	if err != nil {
		return nil, err
	}

	class := &ast.ClassLiteral{Pos: posOf(start)}
	if p.check(token.Identifier) {
		super, err := p.consume()
		if err != nil {
			return nil, err
		}
		class.Extends = &ast.Identifier{Pos: posOf(super), Symbol: super.Value}
	}

	if class.Definition, err = p.parseClassBlock(); err != nil {
		return nil, err
	}
	return class, nil
}

// parseClassBlock reads the members of a class body and sorts them into
// statics, definitions, initializers and at most one constructor.
func (p *Parser) parseClassBlock() (*ast.ClassBlock, error) {
	open, err := p.expect(token.OpenCurlyBracket)
	if err != nil {
		return nil, err
	}

	var members []ast.Item
	for !p.check(token.CloseCurlyBracket) {
		if p.atEnd() {
			return nil, errors.NewSyntaxError([]token.Type{token.CloseCurlyBracket}, p.peek(0))
		}

		item, err := p.parseStatement(scope{inClass: true})
		if err != nil {
			return nil, err
		}

		if _, isStmt := item.(ast.Stmt); isStmt {
			if _, isStatic := item.(*ast.StaticPropertyDecl); !isStatic {
				return nil, kindMismatch(errors.ErrorInvalidClassMember,
					[]string{"StaticPropertyDeclaration", "Expression"}, item)
			}
		}
		members = append(members, item)
	}

	if _, err := p.expect(token.CloseCurlyBracket); err != nil {
		return nil, err
	}

	return partitionClassBody(posOf(open), members)
}

func partitionClassBody(pos ast.Position, members []ast.Item) (*ast.ClassBlock, error) {
	block := &ast.ClassBlock{
		Pos:          pos,
		Statics:      []*ast.StaticPropertyDecl{},
		Initializers: []*ast.Identifier{},
		Definitions:  []*ast.AssignmentExpr{},
	}

	for _, member := range members {
		switch m := member.(type) {
		case *ast.StaticPropertyDecl:
			block.Statics = append(block.Statics, m)

		case *ast.AssignmentExpr:
			if m.Operator != "=" {
				return nil, errors.NewParsingError(errors.ErrorClassAssignOperator,
					fmt.Sprintf("class field must be assigned with =, got %s", m.Operator), m.Pos.Line, m.Pos.Column)
			}
			block.Definitions = append(block.Definitions, m)

		case *ast.FunctionLiteral:
			if block.Constructor != nil {
				return nil, errors.NewParsingError(errors.ErrorDuplicateConstructor,
					"class declares more than one constructor", m.Pos.Line, m.Pos.Column)
			}
			if m.Async {
				return nil, errors.NewParsingError(errors.ErrorAsyncConstructor,
					"constructor cannot be asynchronous", m.Pos.Line, m.Pos.Column)
			}
			block.Constructor = m

		case *ast.Identifier:
			block.Initializers = append(block.Initializers, m)

		default:
			return nil, kindMismatch(errors.ErrorInvalidClassMember, classMemberKinds, member)
		}
	}

	return block, nil
}
