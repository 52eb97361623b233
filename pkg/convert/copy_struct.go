package convert

import (
	"github.com/jinzhu/copier"
)

// StructAssign 把 src 与 dst 相同字段名的值复制到 dst 中
// dst 目标结构体，src 源结构体
func StructAssign(src any, dst any) any {
	copier.Copy(dst, src)
	return dst
}
