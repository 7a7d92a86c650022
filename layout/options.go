package layout

// BuildOptions 配置排版阶段所需的依赖。
type BuildOptions struct {
	Typesetter Typesetter
}
