// Package validator bridges go-playground/validator into gin binding
// Package validator 将 go-playground/validator 桥接到 gin binding
package validator

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	val "github.com/go-playground/validator/v10"
)

// CustomValidator implements binding.StructValidator
// CustomValidator 实现 binding.StructValidator
type CustomValidator struct {
	once     sync.Once
	validate *val.Validate
}

// NewCustomValidator 创建 CustomValidator 实例
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = val.New()
		v.validate.SetTagName("binding")
	})
}

// ValidateStruct 校验结构体
func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

// Engine 返回底层验证引擎
func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

// entryTypes 合法的保险库条目类型
var entryTypes = map[string]struct{}{
	"login":    {},
	"note":     {},
	"card":     {},
	"identity": {},
}

// RegisterCustom registers custom validation tags on the active binding validator
// RegisterCustom 在当前 binding 验证器上注册自定义校验标签
func RegisterCustom() {
	v, ok := binding.Validator.Engine().(*val.Validate)
	if !ok {
		return
	}

	// entrytype 校验保险库条目类型
	_ = v.RegisterValidation("entrytype", func(fl val.FieldLevel) bool {
		_, ok := entryTypes[fl.Field().String()]
		return ok
	})
}
