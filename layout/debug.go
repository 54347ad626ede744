package layout

import (
	"encoding/json"
	"io"
	"os"
)

// EncodeDebug 将节点树（含已解析的几何信息）以 JSON 写入 w，undefined 输出为 null。
func EncodeDebug(w io.Writer, tree *Tree) error {
	if tree == nil {
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}

// WriteDebugJSON 将布局结果输出为 JSON 文件，便于调试或可视化。
func WriteDebugJSON(tree *Tree, path string) error {
	if tree == nil {
		return nil
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
