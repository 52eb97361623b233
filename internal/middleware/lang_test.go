package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
)

func TestLangWithTranslatorSetsRequestLang(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uni := ut.New(en.New(), en.New(), zh.New())

	var gotLang string
	var hasTrans bool

	r := gin.New()
	r.Use(LangWithTranslator(uni))
	r.GET("/echo", func(c *gin.Context) {
		gotLang, _ = c.Value("lang").(string)
		_, hasTrans = c.Value("trans").(ut.Translator)
		c.Status(200)
	})

	// The language rides the request context, normalized to lower snake case
	// 语言跟随请求上下文传递，规范化为小写下划线形式
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/echo?lang=zh-CN", nil))
	assert.Equal(t, "zh_cn", gotLang)
	assert.True(t, hasTrans)

	// Header works too, missing lang leaves the context value empty
	// 请求头同样生效，未指定语言时上下文值为空
	req := httptest.NewRequest("GET", "/echo", nil)
	req.Header.Set("lang", "en")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", gotLang)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/echo", nil))
	assert.Equal(t, "", gotLang)
}
