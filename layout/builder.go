package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/flexgeo/binding"
	"github.com/ByLCY/flexgeo/dsl"
	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/style"
)

const rootName = "view"

// resourceSet 保存 resources 段落解析出的调色板与命名样式。
type resourceSet struct {
	palette style.Palette
	styles  map[string][]style.Declaration
}

type styleDef struct {
	extends []string
	decls   []style.Declaration
}

// Build 根据 DSL AST 生成节点树。节点几何信息保持 undefined，交由 Resolve 计算。
func Build(doc *dsl.Document, data any, opts BuildOptions) (*Tree, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}

	res, err := collectResources(doc, data)
	if err != nil {
		return nil, err
	}
	view := doc.View()
	if view == nil {
		return nil, fmt.Errorf("文档中缺少 view 段落")
	}
	if view.Block == nil {
		return nil, fmt.Errorf("view 段落缺少内容")
	}

	viewport, err := resolveViewport(view.Params, data, opts.Viewport)
	if err != nil {
		return nil, err
	}

	b := &builder{res: res, data: data}
	root, err := b.node(rootName, rootName, nil, view.Block)
	if err != nil {
		return nil, err
	}

	meta := collectMeta(doc, data)
	meta.Name = doc.Name
	meta.Version = doc.Version
	return &Tree{Meta: meta, Viewport: viewport, Root: root}, nil
}

type builder struct {
	res  resourceSet
	data any
}

// node 构建一个 box：先展开引用的命名样式，再追加内联声明（内联优先）。
func (b *builder) node(name, path string, styleNames []string, block *dsl.Block) (*Node, error) {
	var decls []style.Declaration
	for _, s := range styleNames {
		named, ok := b.res.styles[s]
		if !ok {
			return nil, fmt.Errorf("box %s: style %s 未定义", path, s)
		}
		decls = append(decls, named...)
	}

	n := &Node{Name: name, Path: path, Rect: geometry.UndefinedRect()}
	seen := map[string]bool{}
	if block != nil {
		for i, stmt := range block.Statements {
			switch {
			case stmt.Assignment != nil:
				d, err := b.declaration(stmt.Assignment)
				if err != nil {
					return nil, fmt.Errorf("box %s: %w", path, err)
				}
				decls = append(decls, d)
			case stmt.Command != nil && stmt.Command.Name == "box":
				child, err := b.box(stmt.Command, path, i, seen)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
			case stmt.Command != nil:
				return nil, fmt.Errorf("box %s: 未知指令 %q (第 %d 行)", path, stmt.Command.Name, stmt.Command.Pos.Line)
			}
		}
	}

	st, err := style.Extract(decls, b.res.palette)
	if err != nil {
		return nil, fmt.Errorf("box %s: %w", path, err)
	}
	n.Style = st
	return n, nil
}

func (b *builder) box(cmd *dsl.Command, parent string, index int, seen map[string]bool) (*Node, error) {
	name := fmt.Sprintf("box%d", index)
	var styleNames []string
	for i, arg := range cmd.Args {
		if arg.Type != "Ident" {
			return nil, fmt.Errorf("box %s: 参数 %q 不是标识符 (第 %d 行)", parent, arg.Raw, arg.Pos.Line)
		}
		if i == 0 {
			name = arg.Value
			continue
		}
		styleNames = append(styleNames, arg.Value)
	}
	if seen[name] {
		return nil, fmt.Errorf("box %s: 子节点名称 %s 重复 (第 %d 行)", parent, name, cmd.Pos.Line)
	}
	seen[name] = true
	return b.node(name, parent+"/"+name, styleNames, cmd.Block)
}

func (b *builder) declaration(a *dsl.Assignment) (style.Declaration, error) {
	value := binding.Interpolate(a.Value.String(), b.data)
	if missing := binding.Unresolved(value); len(missing) > 0 {
		return style.Declaration{}, fmt.Errorf("%s: 未解析的绑定 %s (第 %d 行)", a.Key, strings.Join(missing, ", "), a.Pos.Line)
	}
	return style.Declaration{Key: a.Key, Value: value}, nil
}

// resolveViewport 解析 `view <width> [height]`，未声明的轴沿用 fallback。
func resolveViewport(params []*dsl.Lexeme, data any, fallback geometry.AxisSize[geometry.Number]) (geometry.AxisSize[geometry.Number], error) {
	viewport := fallback
	text := binding.Interpolate((&dsl.Expression{Parts: params}).String(), data)
	fields := strings.Fields(text)
	if len(fields) > 2 {
		return viewport, fmt.Errorf("view 最多接受宽、高两个参数，得到 %d 个", len(fields))
	}
	dst := []*geometry.Number{&viewport.Width, &viewport.Height}
	for i, f := range fields {
		l, err := style.ParseLength(f)
		if err != nil {
			return viewport, fmt.Errorf("view 尺寸 %q 无效: %w", f, err)
		}
		if l.Unit == style.UnitPercent {
			return viewport, fmt.Errorf("view 尺寸不能使用百分比: %s", f)
		}
		*dst[i] = l.Resolve(geometry.Undefined())
	}
	return viewport, nil
}

func collectResources(doc *dsl.Document, data any) (resourceSet, error) {
	res := resourceSet{palette: style.Palette{}}
	raw := map[string]styleDef{}

	for _, section := range doc.Sections {
		if section.Resources == nil || section.Resources.Block == nil {
			continue
		}
		for _, stmt := range section.Resources.Block.Statements {
			if stmt.Command == nil {
				continue
			}
			cmd := stmt.Command
			switch cmd.Name {
			case "color":
				name, value := parseColorResource(cmd)
				if name == "" || value == "" {
					return res, fmt.Errorf("color 资源缺少名称或取值 (第 %d 行)", cmd.Pos.Line)
				}
				c, err := style.ParseHex(value)
				if err != nil {
					return res, fmt.Errorf("color %s: %w", name, err)
				}
				res.palette[name] = c
			case "style":
				if len(cmd.Args) == 0 {
					return res, fmt.Errorf("style 资源缺少名称 (第 %d 行)", cmd.Pos.Line)
				}
				def := styleDef{}
				for _, arg := range cmd.Args[1:] {
					def.extends = append(def.extends, arg.Value)
				}
				b := &builder{data: data}
				if cmd.Block != nil {
					for _, st := range cmd.Block.Statements {
						if st.Assignment == nil {
							continue
						}
						d, err := b.declaration(st.Assignment)
						if err != nil {
							return res, fmt.Errorf("style %s: %w", cmd.Args[0].Value, err)
						}
						def.decls = append(def.decls, d)
					}
				}
				raw[cmd.Args[0].Value] = def
			default:
				return res, fmt.Errorf("未知资源类型 %q (第 %d 行)", cmd.Name, cmd.Pos.Line)
			}
		}
	}

	styles, err := resolveStyles(raw)
	if err != nil {
		return res, err
	}
	res.styles = styles
	return res, nil
}

// parseColorResource 支持 `color Name #hex` 与 `color Name = #hex` 两种写法。
func parseColorResource(cmd *dsl.Command) (string, string) {
	if len(cmd.Args) < 2 {
		return "", ""
	}
	return cmd.Args[0].Value, cmd.Args[len(cmd.Args)-1].Value
}

// resolveStyles 展开样式继承，父样式声明排在前面以便子样式覆盖。
func resolveStyles(styles map[string]styleDef) (map[string][]style.Declaration, error) {
	resolved := map[string][]style.Declaration{}
	visiting := map[string]bool{}

	var dfs func(name string) ([]style.Declaration, error)
	dfs = func(name string) ([]style.Declaration, error) {
		if decls, ok := resolved[name]; ok {
			return decls, nil
		}
		def, ok := styles[name]
		if !ok {
			return nil, fmt.Errorf("style %s 未定义", name)
		}
		if visiting[name] {
			return nil, fmt.Errorf("style 继承存在循环：%s", name)
		}
		visiting[name] = true

		var decls []style.Declaration
		for _, parent := range def.extends {
			inherited, err := dfs(parent)
			if err != nil {
				return nil, err
			}
			decls = append(decls, inherited...)
		}
		decls = append(decls, def.decls...)
		resolved[name] = decls
		delete(visiting, name)
		return decls, nil
	}

	for name := range styles {
		if _, err := dfs(name); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

func collectMeta(doc *dsl.Document, data any) DocumentMeta {
	meta := DocumentMeta{Creator: "flexgeo"}
	for _, section := range doc.Sections {
		if section.Meta == nil || section.Meta.Block == nil {
			continue
		}
		for _, stmt := range section.Meta.Block.Statements {
			if stmt.Assignment == nil {
				continue
			}
			value := binding.Interpolate(stmt.Assignment.Value.String(), data)
			switch strings.ToLower(stmt.Assignment.Key) {
			case "title":
				meta.Title = value
			case "author":
				meta.Author = value
			case "subject":
				meta.Subject = value
			case "creator":
				meta.Creator = value
			case "keywords":
				meta.Keywords = splitList(value)
			}
		}
	}
	return meta
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if unq, err := strconv.Unquote(part); err == nil {
			part = unq
		}
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
