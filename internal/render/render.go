// Package render держит шаблоны страниц. Шаблоны вшиты в бинарь,
// по одному файлу на страницу; общие блоки (шапка, навигация,
// баннеры) определены в layout.tmpl.
package render

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates парсит весь набор страниц. Вызывается один раз при
// сборке роутера.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}
