package lang

// MarshalNode converts a parsed expression into nested maps and scalars
// suitable for JSON or YAML encoding. Instants appear as ISO-8601 strings,
// durations as signed second counts.
func MarshalNode(n Node) any {
	switch n := n.(type) {
	case *Literal:
		if n.Val.Kind == Instant {
			return map[string]any{
				"instant": n.Val.Time().Format(isoLayout),
			}
		}

		return map[string]any{
			"duration": n.Val.Seconds(),
		}

	case *NowExpr:
		return map[string]any{
			"now": true,
		}

	case *BinaryExpr:
		op := "+"
		if n.Op == TokenMinus {
			op = "-"
		}

		return map[string]any{
			"op":    op,
			"left":  MarshalNode(n.Left),
			"right": MarshalNode(n.Right),
		}

	case *FuncCall:
		return map[string]any{
			"call": n.Name,
			"arg":  MarshalNode(n.Arg),
		}

	default:
		return nil
	}
}
