package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DateLayout 请求中日期字段的统一格式
const DateLayout = "2006-01-02"

var once sync.Once

// Register 向 gin 的默认校验器注册自定义规则，多次调用只生效一次
//
//	isodate  — 必须是 YYYY-MM-DD 格式的合法日期
//	notblank — 去除空白后不能为空
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("validation: gin 校验引擎不是 go-playground/validator")
		}
		v.RegisterAlias("isodate", "datetime="+DateLayout)
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("validation: 注册 notblank 失败: %v", err))
		}
	})
}

// Describe 将校验错误转换为 "field: tag" 形式的简短说明，便于写入响应 details
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ""
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		parts = append(parts, fe.Field()+": "+tag)
	}
	return strings.Join(parts, "; ")
}
