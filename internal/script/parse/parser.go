// Package parse implements a recursive-descent parser for the script
// language's textual surface, turning source text into the
// internal/script/ast program-node tree. The grammar mirrors the
// statement and loop forms of a small C-like report-scripting
// language (children/spouses/families/parents loops, if/elsif/else,
// while, proc/func declarations, global and include directives).
// A call's name is looked up against the built-in table at parse
// time (binary search on name); an unresolved name becomes a
// FuncCall, resolved by name against the user function table at
// evaluation time instead of being pre-bound here — this sidesteps
// any ordering requirement between a proc/func definition and its
// callers, since builtin.Lookup does not depend on file order and
// eval.evaluateFuncCall/interpretProcCall already look callees up by
// name through the runtime's FunctionTables.
package parse

import (
	"fmt"

	"github.com/cacack/deadends/internal/script/ast"
	"github.com/cacack/deadends/internal/script/builtin"
)

// Program is everything a file (or set of included files) declares at
// top level: procedure/function definitions, global-variable names,
// and include directives ("global(name)", "include(path)").
type Program struct {
	Procs    []*ast.ProcDef
	Funcs    []*ast.FuncDef
	Globals  []string
	Includes []string
}

// Merge appends other's declarations onto p, the shape the CLI uses to
// combine a main script with every file it includes.
func (p *Program) Merge(other *Program) {
	p.Procs = append(p.Procs, other.Procs...)
	p.Funcs = append(p.Funcs, other.Funcs...)
	p.Globals = append(p.Globals, other.Globals...)
	p.Includes = append(p.Includes, other.Includes...)
}

type parser struct {
	toks []token
	pos  int
	file string
}

// Parse parses one source file's text into a Program. file is used
// only for the error-location prefix and the program nodes' File()
// field.
func Parse(file, src string) (*Program, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, &ParseError{File: file, Line: 0, Message: err.Error()}
	}
	p := &parser{toks: toks, file: file}
	prog := &Program{}
	for !p.at(tokEOF) {
		if err := p.parseTopLevel(prog); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) at(k tokenKind) bool { return p.cur().kind == k }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if !p.at(k) {
		return token{}, p.errorf("expected %s", what)
	}
	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{File: p.file, Line: p.cur().line, Message: fmt.Sprintf(format, args...)}
}

// parseTopLevel parses one of: proc, func, global(name), include(path).
func (p *parser) parseTopLevel(prog *Program) error {
	tok, err := p.expect(tokIdent, "a top-level declaration (proc, func, global, or include)")
	if err != nil {
		return err
	}
	switch tok.text {
	case "proc":
		def, err := p.parseProcOrFunc(true)
		if err != nil {
			return err
		}
		prog.Procs = append(prog.Procs, def.(*ast.ProcDef))
	case "func":
		def, err := p.parseProcOrFunc(false)
		if err != nil {
			return err
		}
		prog.Funcs = append(prog.Funcs, def.(*ast.FuncDef))
	case "global":
		if _, err := p.expect(tokLParen, "("); err != nil {
			return err
		}
		name, err := p.expect(tokIdent, "a global variable name")
		if err != nil {
			return err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return err
		}
		prog.Globals = append(prog.Globals, name.text)
	case "include":
		if _, err := p.expect(tokLParen, "("); err != nil {
			return err
		}
		path, err := p.expect(tokString, "an include path string")
		if err != nil {
			return err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return err
		}
		prog.Includes = append(prog.Includes, path.text)
	default:
		return &ParseError{File: p.file, Line: tok.line, Message: fmt.Sprintf("unexpected top-level declaration %q", tok.text)}
	}
	return nil
}

func (p *parser) parseProcOrFunc(isProc bool) (ast.Node, error) {
	line := p.cur().line
	name, err := p.expect(tokIdent, "a name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	params, err := p.parseIdentList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if isProc {
		return ast.NewProcDef(p.file, line, name.text, params, body), nil
	}
	return ast.NewFuncDef(p.file, line, name.text, params, body), nil
}

// parseIdentList parses idenso: an optional comma-separated list of
// identifiers, terminated by ')'.
func (p *parser) parseIdentList() ([]string, error) {
	var names []string
	if p.at(tokRParen) {
		return names, nil
	}
	for {
		tok, err := p.expect(tokIdent, "an identifier")
		if err != nil {
			return nil, err
		}
		names = append(names, tok.text)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	return names, nil
}

func (p *parser) parseBlock() (ast.Node, error) {
	if _, err := p.expect(tokLBrace, "{"); err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBrace, "}"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *parser) parseStatements() (ast.Node, error) {
	var stmts []ast.Node
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return ast.LinkStmts(nil, stmts), nil
}

func (p *parser) parseStatement() (ast.Node, error) {
	tok := p.cur()
	if tok.kind == tokIdent {
		switch tok.text {
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "break":
			return p.parseBreakOrContinue(true)
		case "continue":
			return p.parseBreakOrContinue(false)
		case "return":
			return p.parseReturn()
		case "call":
			return p.parseCallStmt()
		case "children":
			return p.parseChildrenLoop()
		case "spouses":
			return p.parseSpousesLoop()
		case "families":
			return p.parseFamiliesLoop()
		case "fathers":
			return p.parseParentLoop(ast.FathersKind)
		case "mothers":
			return p.parseParentLoop(ast.MothersKind)
		case "parents":
			return p.parseParentsLoop()
		case "forindiset":
			return p.parseForindisetLoop()
		case "forlist":
			return p.parseForlistLoop()
		case "forindi":
			return p.parseAllXLoop(ast.AllPersons)
		case "forfam":
			return p.parseAllXLoop(ast.AllFamilies)
		case "forsour":
			return p.parseAllXLoop(ast.AllSources)
		case "foreven":
			return p.parseAllXLoop(ast.AllEvents)
		case "forothr":
			return p.parseAllXLoop(ast.AllOthers)
		case "fornotes":
			return p.parseNotesLoop()
		case "traverse":
			return p.parseTraverseLoop()
		case "fornodes":
			return p.parseNodesLoop()
		}
	}
	return p.parseExpr()
}

// parseExpr parses the language's only expression forms: literals, a
// bare identifier, or a call `name(args)`.
func (p *parser) parseExpr() (ast.Node, error) {
	tok := p.cur()
	switch tok.kind {
	case tokString:
		p.advance()
		return ast.NewStringLiteral(p.file, tok.line, tok.text), nil
	case tokInt:
		p.advance()
		return ast.NewIntLiteral(p.file, tok.line, tok.ival), nil
	case tokFloat:
		p.advance()
		return ast.NewFloatLiteral(p.file, tok.line, tok.fval), nil
	case tokIdent:
		p.advance()
		if p.at(tokLParen) {
			return p.parseCall(tok.text, tok.line)
		}
		return ast.NewIdentifier(p.file, tok.line, tok.text), nil
	default:
		return nil, p.errorf("expected an expression")
	}
}

func (p *parser) parseCall(name string, line int) (ast.Node, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	if entry, ok := builtin.Lookup(name); ok {
		if len(args) < entry.Min || len(args) > entry.Max {
			return nil, &ParseError{File: p.file, Line: line, Message: fmt.Sprintf("%s expects between %d and %d arguments, got %d", name, entry.Min, entry.Max, len(args))}
		}
		return ast.NewBltinCall(p.file, line, name, args, entry.Fn, entry.Min, entry.Max), nil
	}
	return ast.NewFuncCall(p.file, line, name, args), nil
}

// parseExprList parses exprso: an optional comma-separated expression
// list, terminated by ')'.
func (p *parser) parseExprList() ([]ast.Node, error) {
	var args []ast.Node
	if p.at(tokRParen) {
		return args, nil
	}
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	return args, nil
}

// parseCondForm parses "secondo": expr, or the if-let form
// `identExpr, realExpr` where the first expr position is required to
// be a bare identifier (the "(identifier, expr)" binding form used by
// if and while conditions).
func (p *parser) parseCondForm() (string, ast.Node, error) {
	first, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	if !p.at(tokComma) {
		return "", first, nil
	}
	ident, ok := first.(*ast.Identifier)
	if !ok {
		return "", nil, p.errorf("if/while binding form requires an identifier before ','")
	}
	p.advance()
	second, err := p.parseExpr()
	if err != nil {
		return "", nil, err
	}
	return ident.Name, second, nil
}

func (p *parser) parseIf() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	condIdent, condExpr, err := p.parseCondForm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	thenStmts, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	elseStmts, err := p.parseElseTail()
	if err != nil {
		return nil, err
	}
	return ast.NewIf(p.file, line, condIdent, condExpr, thenStmts, elseStmts), nil
}

// parseElseTail parses elsifso elseo, desugaring an elsif chain into
// nested If nodes hanging off ElseStmts.
func (p *parser) parseElseTail() (ast.Node, error) {
	if p.at(tokIdent) && p.cur().text == "elsif" {
		line := p.cur().line
		p.advance()
		if _, err := p.expect(tokLParen, "("); err != nil {
			return nil, err
		}
		condIdent, condExpr, err := p.parseCondForm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}
		thenStmts, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseElseTail()
		if err != nil {
			return nil, err
		}
		ifNode := ast.NewIf(p.file, line, condIdent, condExpr, thenStmts, rest)
		return ast.LinkStmts(nil, []ast.Node{ifNode}), nil
	}
	if p.at(tokIdent) && p.cur().text == "else" {
		p.advance()
		return p.parseBlock()
	}
	return nil, nil
}

func (p *parser) parseWhile() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	condIdent, condExpr, err := p.parseCondForm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(p.file, line, condIdent, condExpr, body), nil
}

func (p *parser) parseBreakOrContinue(isBreak bool) (ast.Node, error) {
	line := p.cur().line
	p.advance()
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	if isBreak {
		return ast.NewBreak(p.file, line), nil
	}
	return ast.NewContinue(p.file, line), nil
}

func (p *parser) parseReturn() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	var expr ast.Node
	if !p.at(tokRParen) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr = e
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return ast.NewReturn(p.file, line, expr), nil
}

func (p *parser) parseCallStmt() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	name, err := p.expect(tokIdent, "a procedure name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return ast.NewProcCall(p.file, line, name.text, args), nil
}

// parseLoopHeader parses "(" expr ("," IDEN)*nIdents ")", the shape
// every expr-driven loop form uses.
func (p *parser) parseLoopHeader(nIdents int) (ast.Node, []string, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	idents := make([]string, 0, nIdents)
	for i := 0; i < nIdents; i++ {
		if _, err := p.expect(tokComma, ","); err != nil {
			return nil, nil, err
		}
		tok, err := p.expect(tokIdent, "an identifier")
		if err != nil {
			return nil, nil, err
		}
		idents = append(idents, tok.text)
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, nil, err
	}
	return expr, idents, nil
}

// parseIdentOnlyHeader parses "(" IDEN ("," IDEN)*(nIdents-1) ")", the
// shape forindi/forfam/forsour/foreven/forothr use (no driving expr:
// they walk an entire root list).
func (p *parser) parseIdentOnlyHeader(nIdents int) ([]string, error) {
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	idents := make([]string, 0, nIdents)
	for i := 0; i < nIdents; i++ {
		if i > 0 {
			if _, err := p.expect(tokComma, ","); err != nil {
				return nil, err
			}
		}
		tok, err := p.expect(tokIdent, "an identifier")
		if err != nil {
			return nil, err
		}
		idents = append(idents, tok.text)
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	return idents, nil
}

func (p *parser) parseChildrenLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(2)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewChildrenLoop(p.file, line, expr, idents[0], idents[1], body), nil
}

func (p *parser) parseSpousesLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(3)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewSpousesLoop(p.file, line, expr, idents[0], idents[1], idents[2], body), nil
}

func (p *parser) parseFamiliesLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(3)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFamiliesLoop(p.file, line, expr, idents[0], idents[1], idents[2], body), nil
}

func (p *parser) parseParentLoop(kind ast.ParentLoopKind) (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(3)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewParentLoop(p.file, line, kind, expr, idents[0], idents[1], idents[2], body), nil
}

func (p *parser) parseParentsLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(2)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFamsAsChildLoop(p.file, line, expr, idents[0], idents[1], body), nil
}

func (p *parser) parseForindisetLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(3)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewSequenceLoop(p.file, line, expr, idents[0], idents[1], idents[2], body), nil
}

func (p *parser) parseForlistLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(2)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewListLoop(p.file, line, expr, idents[0], idents[1], body), nil
}

func (p *parser) parseAllXLoop(kind ast.RootListKind) (ast.Node, error) {
	line := p.cur().line
	p.advance()
	idents, err := p.parseIdentOnlyHeader(2)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewAllXLoop(p.file, line, kind, idents[0], idents[1], body), nil
}

func (p *parser) parseNotesLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(1)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewNotesLoop(p.file, line, expr, idents[0], body), nil
}

func (p *parser) parseTraverseLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(2)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewTraverseLoop(p.file, line, expr, idents[0], idents[1], body), nil
}

func (p *parser) parseNodesLoop() (ast.Node, error) {
	line := p.cur().line
	p.advance()
	expr, idents, err := p.parseLoopHeader(1)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewNodesLoop(p.file, line, expr, idents[0], body), nil
}
