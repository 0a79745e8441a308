package parser

import (
	"fmt"
	"io"

	"github.com/quadroom/vscene/builtin"
	"github.com/quadroom/vscene/engine"
	"github.com/quadroom/vscene/errs"
	"github.com/quadroom/vscene/ifaces"
	"github.com/quadroom/vscene/node"
	"github.com/quadroom/vscene/profile"
	"github.com/quadroom/vscene/proto"
	"github.com/quadroom/vscene/registry"
	"github.com/quadroom/vscene/route"
	"github.com/quadroom/vscene/scope"
	"github.com/quadroom/vscene/sim"
	"github.com/quadroom/vscene/util/logger"
	"github.com/quadroom/vscene/value"
)

// Dialect selects which scene-file grammar variant a Parse call uses
// (spec.md §6.1): the compact 1997-era syntax, or the extended syntax
// with profile/component selection and the additional statement forms
// (PROFILE, COMPONENT, META, IMPORT, EXPORT) it adds.
type Dialect int

const (
	Compact Dialect = iota
	Extended
)

// MediaType resolves a media-type hint to the dialect it selects,
// reporting errs.BadMediaType if it names neither (spec.md §6.1, §7).
func MediaType(mediaType string) (Dialect, error) {
	switch mediaType {
	case "model/vrml", "x-world/x-vrml":
		return Compact, nil
	case "model/x3d-vrml":
		return Extended, nil
	}
	return 0, &errs.BadMediaType{Type: mediaType}
}

// Warning is a non-fatal parse complaint (deprecated keyword, questionable
// literal) delivered to the logger rather than aborting the parse
// (spec.md §4.E, §7; supplemented per SPEC_FULL.md §4's style-warning
// detail).
type Warning struct {
	Line    int
	Col     int
	Message string
}

// protoFrame is one active PROTO-body parse context: the definition being
// accumulated and the scope its body nodes are parsed into.
type protoFrame struct {
	def   *proto.Definition
	scope *scope.Scope
}

// Parser holds the parse-time state spec.md §4.E describes: a scope
// stack (here, the active PROTO-body frames; the root scope lives outside
// any frame), deprecated-keyword occurrence counters, and the warnings
// sink. It drives a single scene-file parse to completion and is not
// reused across files.
type Parser struct {
	tok     *Tokenizer
	uri     string
	dialect Dialect
	log     *logger.Logger
	root    *scope.Scope
	reg     *registry.Registry
	rts     *route.Graph
	comps   *profile.Registry

	protoStack []*protoFrame
	protoDefs  map[string]*proto.Definition // metatype TypeID -> its Definition

	deprecated map[string]int
	warnings   []Warning
	metadata   map[string]string
}

// New returns a Parser that will populate eng's registry, root scope, and
// route graph as it parses, defaulting to the compact dialect (use Parse,
// which selects the dialect from a media-type hint, for normal use).
func New(eng *engine.Engine) *Parser {
	return &Parser{
		log:        logger.New("parser", eng.Logger()),
		root:       eng.RootScope(),
		reg:        eng.Registry(),
		rts:        eng.Routes(),
		comps:      eng.Components(),
		protoDefs:  make(map[string]*proto.Definition),
		deprecated: make(map[string]int),
		metadata:   make(map[string]string),
	}
}

func (p *Parser) warnf(tok Token, format string, args ...interface{}) {
	p.warn(tok, fmt.Sprintf(format, args...))
}

func (p *Parser) warn(tok Token, msg string) {
	p.warnings = append(p.warnings, Warning{Line: tok.Line, Col: tok.Col, Message: msg})
	p.log.Warn("parser: %d:%d: %s", tok.Line, tok.Col, msg)
}

func (p *Parser) fail(tok Token, format string, args ...interface{}) error {
	return &errs.InvalidScene{URI: p.uri, Line: tok.Line, Col: tok.Col, Message: fmt.Sprintf(format, args...)}
}

// currentScope returns the scope new DEF names and node statements are
// installed into: the innermost active PROTO body, or the root scope.
func (p *Parser) currentScope() *scope.Scope {
	if len(p.protoStack) > 0 {
		return p.protoStack[len(p.protoStack)-1].scope
	}
	return p.root
}

func (p *Parser) currentProtoDef() *proto.Definition {
	if len(p.protoStack) > 0 {
		return p.protoStack[len(p.protoStack)-1].def
	}
	return nil
}

// Parse reads a complete scene file from r under the dialect mediaType
// selects, installing PROTO/EXTERNPROTO types and node statements into the
// engine's root scope and routes, and returns the engine.Document ready
// for Engine.Load along with every collected style warning (spec.md §4.E,
// §6.1, §6.2, §8). A mediaType naming neither dialect fails fast with
// errs.BadMediaType before any byte of r is read.
func Parse(r io.Reader, uri string, mediaType string, eng *engine.Engine) (*engine.Document, []Warning, error) {
	dialect, err := MediaType(mediaType)
	if err != nil {
		return nil, nil, err
	}

	p := New(eng)
	p.uri = uri
	p.dialect = dialect
	p.tok = NewTokenizer(r)

	doc := &engine.Document{}
	for {
		tok, err := p.tok.Peek()
		if err != nil {
			return nil, p.warnings, p.fail(Token{Line: 1}, "%v", err)
		}
		if tok.Kind == TokEOF {
			break
		}
		n, r, ok, err := p.parseTopLevelStatement()
		if err != nil {
			return nil, p.warnings, err
		}
		if ok {
			if n != nil {
				doc.Roots = append(doc.Roots, n)
				if doc.InitialViewpoint == nil {
					if b, isBindable := n.Behavior().(builtin.Bindable); isBindable && b.BindableCategory() == sim.Viewpoint {
						doc.InitialViewpoint = n
					}
				}
			}
			if r != nil {
				doc.Routes = append(doc.Routes, *r)
			}
		}
	}
	if dialect == Extended && len(p.metadata) > 0 {
		doc.Metadata = p.metadata
	}
	return doc, p.warnings, nil
}

func (p *Parser) parseTopLevelStatement() (*node.Node, *route.Route, bool, error) {
	tok, err := p.tok.Peek()
	if err != nil {
		return nil, nil, false, err
	}
	switch tok.Text {
	case "PROTO":
		p.tok.Next()
		if err := p.parseProtoDecl(); err != nil {
			return nil, nil, false, err
		}
		return nil, nil, false, nil
	case "EXTERNPROTO":
		p.tok.Next()
		if err := p.parseExternProtoDecl(); err != nil {
			return nil, nil, false, err
		}
		return nil, nil, false, nil
	case "ROUTE":
		p.tok.Next()
		r, err := p.parseRoute()
		if err != nil {
			return nil, nil, false, err
		}
		return nil, r, true, nil
	case "PROFILE":
		if p.dialect != Extended {
			break
		}
		p.tok.Next()
		return nil, nil, false, p.parseProfileDecl()
	case "COMPONENT":
		if p.dialect != Extended {
			break
		}
		p.tok.Next()
		return nil, nil, false, p.parseComponentDecl()
	case "META":
		if p.dialect != Extended {
			break
		}
		p.tok.Next()
		return nil, nil, false, p.parseMetaDecl()
	case "IMPORT":
		if p.dialect != Extended {
			break
		}
		p.tok.Next()
		return nil, nil, false, p.parseImportDecl()
	case "EXPORT":
		if p.dialect != Extended {
			break
		}
		p.tok.Next()
		return nil, nil, false, p.parseExportDecl()
	}
	n, err := p.parseNodeStatement(p.currentScope())
	if err != nil {
		return nil, nil, false, err
	}
	return n, nil, true, nil
}

// parseNodeStatement parses one of: "DEF name Type { ... }",
// "USE name", or "Type { ... }" (spec.md §3.5, §4.F).
func (p *Parser) parseNodeStatement(sc *scope.Scope) (*node.Node, error) {
	tok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokIdent {
		return nil, p.fail(tok, "expected a node statement, got %q", tok.Text)
	}

	switch tok.Text {
	case "DEF":
		name, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		typeTok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		n, err := p.parseNodeBody(typeTok, sc)
		if err != nil {
			return nil, err
		}
		sc.AddNode(name.Text, n)
		return n, nil
	case "USE":
		name, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		n, ok := sc.FindNode(name.Text)
		if !ok {
			return nil, p.fail(name, "USE %s: no such DEF in this scope", name.Text)
		}
		return n, nil
	}
	return p.parseNodeBody(tok, sc)
}

// parseNodeBody parses "{ field-statement* }" for the node type named by
// typeTok, resolving that type against sc (and, inside a PROTO body,
// against the IS-mapping grammar). It constructs the node via node.New
// (ordinary metatypes) or proto.Instantiate (PROTO-backed metatypes),
// whichever typeTok's resolved metatype requires.
func (p *Parser) parseNodeBody(typeTok Token, sc *scope.Scope) (*node.Node, error) {
	nt, ok := sc.FindType(typeTok.Text)
	if !ok {
		// The identifier may name a real, globally registered metatype
		// that simply isn't installed under this name at the active
		// profile/component level (spec.md §8 scenario 5: a node type
		// unique to a higher profile fails with UnsupportedInterface,
		// not a generic unknown-identifier error).
		if mt := p.reg.Lookup(builtinMetatypeID(typeTok.Text)); mt != nil {
			return nil, &errs.UnsupportedInterface{NodeType: typeTok.Text, Requested: "*"}
		}
		return nil, p.fail(typeTok, "unknown node type %q", typeTok.Text)
	}

	open, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if open.Kind != TokPunct || open.Text != "{" {
		return nil, p.fail(open, "expected '{' after node type %q, got %q", typeTok.Text, open.Text)
	}

	literals := make(map[string]*value.Value)
	type isEntry struct {
		field string
		iface string
	}
	var isEntries []isEntry

	for {
		peek, err := p.tok.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Kind == TokPunct && peek.Text == "}" {
			p.tok.Next()
			break
		}
		fieldTok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		p.checkDeprecated(fieldTok)

		isOrValue, err := p.tok.Peek()
		if err != nil {
			return nil, err
		}
		if isOrValue.Kind == TokIdent && isOrValue.Text == "IS" {
			p.tok.Next()
			ifaceTok, err := p.tok.Next()
			if err != nil {
				return nil, err
			}
			if p.currentProtoDef() == nil {
				return nil, p.fail(ifaceTok, "IS-mapping outside an active PROTO body")
			}
			isEntries = append(isEntries, isEntry{field: fieldTok.Text, iface: ifaceTok.Text})
			continue
		}

		kind, ok := nt.Interfaces.FieldKind(fieldTok.Text)
		if !ok {
			return nil, p.fail(fieldTok, "node type %q has no field %q", typeTok.Text, fieldTok.Text)
		}
		v, err := p.parseValueOf(kind, sc)
		if err != nil {
			return nil, err
		}
		storageID, _ := nt.Interfaces.StorageID(fieldTok.Text)
		literals[storageID] = v
	}

	def, isProto := p.protoDefs[nt.Metatype.TypeID]
	var n *node.Node
	if isProto {
		n, err = proto.Instantiate(def, nt.Metatype, typeTok.Text, literals, sc, p.rts)
	} else {
		n, err = node.New(nt, literals, sc)
	}
	if err != nil {
		return nil, err
	}

	if frame := p.currentProtoDef(); frame != nil {
		frame.BodyRoots = append(frame.BodyRoots, n)
		for _, e := range isEntries {
			frame.IS = append(frame.IS, proto.IS{BodyNode: n, BodyField: e.field, IfaceID: e.iface})
		}
	}
	return n, nil
}

// parseValueOf dispatches SFNode/MFNode (which need scope access to parse
// a nested node statement) separately from the other kinds, which
// value.go's parseSF/parseMF handle directly.
func (p *Parser) parseValueOf(kind value.Kind, sc *scope.Scope) (*value.Value, error) {
	switch kind {
	case value.SFNode:
		return p.parseSFNode(sc)
	case value.MFNode:
		return p.parseMFNode(sc)
	}
	if kind.IsMulti() {
		return p.parseMF(kind, p.warn)
	}
	return p.parseSF(kind, p.warn)
}

func (p *Parser) parseSFNode(sc *scope.Scope) (*value.Value, error) {
	v := value.New(value.SFNode)
	peek, err := p.tok.Peek()
	if err != nil {
		return nil, err
	}
	if peek.Kind == TokIdent && peek.Text == "NULL" {
		p.tok.Next()
		return v, nil
	}
	n, err := p.parseNodeStatement(sc)
	if err != nil {
		return nil, err
	}
	v.SetNode(n)
	return v, nil
}

func (p *Parser) parseMFNode(sc *scope.Scope) (*value.Value, error) {
	v := value.New(value.MFNode)
	open, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if open.Kind != TokPunct || open.Text != "[" {
		return nil, p.fail(open, "expected '[' to start a node list, got %q", open.Text)
	}
	for {
		peek, err := p.tok.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Kind == TokPunct && peek.Text == "]" {
			p.tok.Next()
			break
		}
		n, err := p.parseNodeStatement(sc)
		if err != nil {
			return nil, err
		}
		if err := v.AppendNode(n); err != nil {
			return nil, err
		}
	}
	return v, nil
}

var deprecatedKeywords = map[string]bool{
	"eventIn": true, "eventOut": true, "exposedField": true, "field": true,
}

// checkDeprecated counts occurrences of the 1997-era interface-access
// keywords appearing where a field identifier was expected (a scene using
// the keyword itself as a field name, or a parser misparse recovering on
// one) — supplemented per SPEC_FULL.md §4 from the original tokenizer's
// per-occurrence deprecation counter; it never blocks the parse.
func (p *Parser) checkDeprecated(tok Token) {
	if !deprecatedKeywords[tok.Text] {
		return
	}
	p.deprecated[tok.Text]++
	p.warnf(tok, "%q used as a field identifier is a reserved interface-access keyword (occurrence %d)", tok.Text, p.deprecated[tok.Text])
}

// DeprecatedCounts returns the per-keyword occurrence counts accumulated
// during the parse, for tests and diagnostics.
func (p *Parser) DeprecatedCounts() map[string]int {
	out := make(map[string]int, len(p.deprecated))
	for k, v := range p.deprecated {
		out[k] = v
	}
	return out
}

// parseInterfaceDecls parses the "[ accessKind Kind id [default] ... ]"
// interface list shared by PROTO and EXTERNPROTO declarations (spec.md
// §3.6). withDefaults controls whether Field/ExposedField entries are
// followed by a default-value literal (true for PROTO, false for
// EXTERNPROTO, which only declares shape).
func (p *Parser) parseInterfaceDecls(withDefaults bool) ([]ifaces.Interface, map[string]*value.Value, error) {
	open, err := p.tok.Next()
	if err != nil {
		return nil, nil, err
	}
	if open.Kind != TokPunct || open.Text != "[" {
		return nil, nil, p.fail(open, "expected '[' to start an interface list, got %q", open.Text)
	}

	var decls []ifaces.Interface
	defaults := make(map[string]*value.Value)
	for {
		peek, err := p.tok.Peek()
		if err != nil {
			return nil, nil, err
		}
		if peek.Kind == TokPunct && peek.Text == "]" {
			p.tok.Next()
			break
		}
		accessTok, err := p.tok.Next()
		if err != nil {
			return nil, nil, err
		}
		access, ok := accessKeyword(accessTok.Text)
		if !ok {
			return nil, nil, p.fail(accessTok, "expected eventIn/eventOut/field/exposedField, got %q", accessTok.Text)
		}
		kindTok, err := p.tok.Next()
		if err != nil {
			return nil, nil, err
		}
		kind, ok := kindKeyword(kindTok.Text)
		if !ok {
			return nil, nil, p.fail(kindTok, "unknown field type %q", kindTok.Text)
		}
		idTok, err := p.tok.Next()
		if err != nil {
			return nil, nil, err
		}
		decls = append(decls, ifaces.Interface{Access: access, Kind: kind, ID: idTok.Text})

		if withDefaults && (access == ifaces.Field || access == ifaces.ExposedField) {
			v, err := p.parseValueOf(kind, p.currentScope())
			if err != nil {
				return nil, nil, err
			}
			defaults[idTok.Text] = v
		}
	}
	return decls, defaults, nil
}

// builtinMetatypeID reproduces the "urn:vscene:node:<LocalID>" convention
// every built-in metatype in package builtin registers under, so a failed
// type lookup can distinguish "no such node type exists at all" from
// "that node type exists but isn't installed in this profile" (spec.md §8
// scenario 5).
func builtinMetatypeID(localID string) string {
	return "urn:vscene:node:" + localID
}

func accessKeyword(s string) (ifaces.Access, bool) {
	switch s {
	case "eventIn":
		return ifaces.EventIn, true
	case "eventOut":
		return ifaces.EventOut, true
	case "field":
		return ifaces.Field, true
	case "exposedField":
		return ifaces.ExposedField, true
	}
	return 0, false
}

var kindByName = map[string]value.Kind{
	"SFBool": value.SFBool, "SFInt32": value.SFInt32, "SFFloat": value.SFFloat,
	"SFDouble": value.SFDouble, "SFTime": value.SFTime, "SFString": value.SFString,
	"SFColor": value.SFColor, "SFColorRGBA": value.SFColorRGBA, "SFVec2f": value.SFVec2f,
	"SFVec3f": value.SFVec3f, "SFVec3d": value.SFVec3d, "SFRotation": value.SFRotation,
	"SFNode": value.SFNode, "SFImage": value.SFImage,
	"MFBool": value.MFBool, "MFInt32": value.MFInt32, "MFFloat": value.MFFloat,
	"MFDouble": value.MFDouble, "MFTime": value.MFTime, "MFString": value.MFString,
	"MFColor": value.MFColor, "MFColorRGBA": value.MFColorRGBA, "MFVec2f": value.MFVec2f,
	"MFVec3f": value.MFVec3f, "MFVec3d": value.MFVec3d, "MFRotation": value.MFRotation,
	"MFNode": value.MFNode,
}

func kindKeyword(s string) (value.Kind, bool) {
	k, ok := kindByName[s]
	return k, ok
}

// parseProtoDecl parses "PROTO Name [ interfaces ] { body }" (spec.md
// §3.6, §4.I): it pushes a fresh body scope nested under the enclosing
// scope (so FindType still resolves outer types, but DEF/USE is body-
// local), accumulates body statements into a proto.Definition, then calls
// proto.Build and installs the resulting node type under Name in the
// enclosing scope.
func (p *Parser) parseProtoDecl() error {
	nameTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	decls, defaults, err := p.parseInterfaceDecls(true)
	if err != nil {
		return err
	}
	ifaceSet, err := ifaces.NewSet(decls...)
	if err != nil {
		return p.fail(nameTok, "PROTO %s: %v", nameTok.Text, err)
	}

	open, err := p.tok.Next()
	if err != nil {
		return err
	}
	if open.Kind != TokPunct || open.Text != "{" {
		return p.fail(open, "expected '{' to start PROTO %s's body, got %q", nameTok.Text, open.Text)
	}

	outer := p.currentScope()
	typeID := "urn:vscene:proto:" + nameTok.Text
	def := &proto.Definition{TypeID: typeID, Interfaces: ifaceSet, BodyDefs: map[string]*node.Node{}, Defaults: defaults}
	bodyScope := scope.New(nameTok.Text+"#body", outer)
	p.protoStack = append(p.protoStack, &protoFrame{def: def, scope: bodyScope})

	for {
		peek, err := p.tok.Peek()
		if err != nil {
			p.protoStack = p.protoStack[:len(p.protoStack)-1]
			return err
		}
		if peek.Kind == TokPunct && peek.Text == "}" {
			p.tok.Next()
			break
		}
		switch peek.Text {
		case "ROUTE":
			p.tok.Next()
			r, err := p.parseBodyRoute(bodyScope)
			if err != nil {
				p.protoStack = p.protoStack[:len(p.protoStack)-1]
				return err
			}
			def.BodyRoutes = append(def.BodyRoutes, *r)
		default:
			if _, err := p.parseNodeStatement(bodyScope); err != nil {
				p.protoStack = p.protoStack[:len(p.protoStack)-1]
				return err
			}
		}
	}
	p.protoStack = p.protoStack[:len(p.protoStack)-1]

	for name, n := range bodyScope.DefNames() {
		def.BodyDefs[name] = n
	}

	mt, err := proto.Build(def, p.rts)
	if err != nil {
		return p.fail(nameTok, "%v", err)
	}
	p.protoDefs[mt.TypeID] = def
	outer.AddType(&node.NodeType{LocalID: nameTok.Text, Metatype: mt, Interfaces: def.Interfaces})
	return nil
}

// parseExternProtoDecl parses "EXTERNPROTO Name [ interfaces ] urlList"
// (spec.md §4.E): if any URL in the list already resolves to a registered
// metatype, that metatype is reused directly; otherwise a proto.Stub is
// registered in its place (spec.md §4.I). The parser starts no fetch of
// the URLs.
func (p *Parser) parseExternProtoDecl() error {
	nameTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	decls, _, err := p.parseInterfaceDecls(false)
	if err != nil {
		return err
	}
	ifaceSet, err := ifaces.NewSet(decls...)
	if err != nil {
		return p.fail(nameTok, "EXTERNPROTO %s: %v", nameTok.Text, err)
	}

	urls, err := p.parseURLList()
	if err != nil {
		return err
	}

	var mt *node.Metatype
	for _, u := range urls {
		if found := p.reg.LookupURL(u); found != nil {
			mt = found
			break
		}
	}
	if mt == nil {
		typeID := "urn:vscene:externproto:" + nameTok.Text
		_, mt = proto.NewStub(typeID, urls, ifaceSet)
		p.reg.Register(mt)
	}
	for _, u := range urls {
		p.reg.RegisterAlias(u, mt.TypeID)
	}
	p.currentScope().AddType(&node.NodeType{LocalID: nameTok.Text, Metatype: mt, Interfaces: ifaceSet})
	return nil
}

func (p *Parser) parseURLList() ([]string, error) {
	tok, err := p.tok.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokString {
		p.tok.Next()
		return []string{tok.Text}, nil
	}
	if tok.Kind != TokPunct || tok.Text != "[" {
		return nil, p.fail(tok, "expected a URL string or '[' URL list, got %q", tok.Text)
	}
	p.tok.Next()
	var urls []string
	for {
		peek, err := p.tok.Peek()
		if err != nil {
			return nil, err
		}
		if peek.Kind == TokPunct && peek.Text == "]" {
			p.tok.Next()
			break
		}
		strTok, err := p.tok.Next()
		if err != nil {
			return nil, err
		}
		if strTok.Kind != TokString {
			return nil, p.fail(strTok, "expected a quoted URL, got %q", strTok.Text)
		}
		urls = append(urls, strTok.Text)
	}
	return urls, nil
}

// parseProfileDecl parses the extended dialect's "PROFILE Name" header
// statement, installing the named builtin profile's full component/level
// set into the root scope (spec.md §4.J, §6.1, §8 scenario 5).
func (p *Parser) parseProfileDecl() error {
	nameTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	prof, ok := profile.Lookup(nameTok.Text)
	if !ok {
		return p.fail(nameTok, "unknown profile %q", nameTok.Text)
	}
	for _, cl := range prof.Levels {
		p.comps.InstallInto(p.root, p.reg, cl.Component, cl.Level)
	}
	return nil
}

// parseComponentDecl parses the extended dialect's "COMPONENT Name:Level"
// header statement, installing that single component level (and whatever
// it transitively requires) on top of whatever PROFILE already installed
// (spec.md §4.J, §6.1).
func (p *Parser) parseComponentDecl() error {
	nameTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	colonTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	if colonTok.Kind != TokPunct || colonTok.Text != ":" {
		return p.fail(colonTok, "expected ':' in COMPONENT statement, got %q", colonTok.Text)
	}
	levelTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	level, err := parseInt32(levelTok)
	if err != nil {
		return p.fail(levelTok, "%v", err)
	}
	p.comps.InstallInto(p.root, p.reg, nameTok.Text, int(level))
	return nil
}

// parseMetaDecl parses the extended dialect's "META \"key\" \"value\""
// statement into the parser's metadata map, which Parse attaches to the
// resulting Document (spec.md §4.E, §6.1, §6.2).
func (p *Parser) parseMetaDecl() error {
	keyTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	if keyTok.Kind != TokString {
		return p.fail(keyTok, "expected a quoted META key, got %q", keyTok.Text)
	}
	valTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	if valTok.Kind != TokString {
		return p.fail(valTok, "expected a quoted META value, got %q", valTok.Text)
	}
	p.metadata[keyTok.Text] = valTok.Text
	return nil
}

// parseImportDecl parses "IMPORT InlineName.exportedName AS localName".
// Cross-file name import depends on the Inline node's URL fetch, which
// spec.md §1 names as an external collaborator outside this core's scope;
// the statement is accepted syntactically and logged rather than wired,
// so a scene using it still parses (spec.md §4.E's "no attempt is made to
// guess missing values" applies to field literals, not to collaborators
// this core never implements).
func (p *Parser) parseImportDecl() error {
	inlineTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	dotTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	if dotTok.Kind != TokPunct || dotTok.Text != "." {
		return p.fail(dotTok, "expected '.' in IMPORT statement, got %q", dotTok.Text)
	}
	exportedTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	asTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	if asTok.Text != "AS" {
		return p.fail(asTok, "expected AS in IMPORT statement, got %q", asTok.Text)
	}
	localTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	p.warnf(inlineTok, "IMPORT %s.%s AS %s: cross-file import is outside this engine's scope; ignored",
		inlineTok.Text, exportedTok.Text, localTok.Text)
	return nil
}

// parseExportDecl parses "EXPORT localName AS exportedName", accepted for
// the same reason as parseImportDecl.
func (p *Parser) parseExportDecl() error {
	localTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	asTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	if asTok.Text != "AS" {
		return p.fail(asTok, "expected AS in EXPORT statement, got %q", asTok.Text)
	}
	exportedTok, err := p.tok.Next()
	if err != nil {
		return err
	}
	p.warnf(localTok, "EXPORT %s AS %s: cross-file export is outside this engine's scope; ignored",
		localTok.Text, exportedTok.Text)
	return nil
}

// parseRoute parses "ROUTE Src.outId TO Dst.inId" at scene scope,
// resolving both endpoints against the current scope and installing the
// route directly into the engine's shared route graph (spec.md §3.7).
func (p *Parser) parseRoute() (*route.Route, error) {
	sc := p.currentScope()
	srcNode, srcID, err := p.parseRouteEndpoint(sc)
	if err != nil {
		return nil, err
	}
	toTok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if toTok.Text != "TO" {
		return nil, p.fail(toTok, "expected TO in ROUTE statement, got %q", toTok.Text)
	}
	dstNode, dstID, err := p.parseRouteEndpoint(sc)
	if err != nil {
		return nil, err
	}
	r := route.Route{SrcNode: srcNode, SrcID: srcID, DstNode: dstNode, DstID: dstID}
	if p.rts != nil {
		if err := p.rts.Add(srcNode, srcID, dstNode, dstID); err != nil {
			return nil, p.fail(toTok, "%v", err)
		}
	}
	return &r, nil
}

// parseBodyRoute parses a ROUTE statement inside an active PROTO body: its
// endpoints are recorded against the body's own nodes and installed only
// when proto.Instantiate clones the body (spec.md §4.I).
func (p *Parser) parseBodyRoute(sc *scope.Scope) (*route.Route, error) {
	srcNode, srcID, err := p.parseRouteEndpoint(sc)
	if err != nil {
		return nil, err
	}
	toTok, err := p.tok.Next()
	if err != nil {
		return nil, err
	}
	if toTok.Text != "TO" {
		return nil, p.fail(toTok, "expected TO in ROUTE statement, got %q", toTok.Text)
	}
	dstNode, dstID, err := p.parseRouteEndpoint(sc)
	if err != nil {
		return nil, err
	}
	r := route.Route{SrcNode: srcNode, SrcID: srcID, DstNode: dstNode, DstID: dstID}
	return &r, nil
}

func (p *Parser) parseRouteEndpoint(sc *scope.Scope) (*node.Node, string, error) {
	nameTok, err := p.tok.Next()
	if err != nil {
		return nil, "", err
	}
	dotTok, err := p.tok.Next()
	if err != nil {
		return nil, "", err
	}
	if dotTok.Kind != TokPunct || dotTok.Text != "." {
		return nil, "", p.fail(dotTok, "expected '.' in ROUTE endpoint, got %q", dotTok.Text)
	}
	fieldTok, err := p.tok.Next()
	if err != nil {
		return nil, "", err
	}
	n, ok := sc.FindNode(nameTok.Text)
	if !ok {
		return nil, "", p.fail(nameTok, "ROUTE: no such DEF %q in this scope", nameTok.Text)
	}
	return n, fieldTok.Text, nil
}
