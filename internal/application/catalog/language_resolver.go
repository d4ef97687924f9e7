package catalog

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CanonicalLanguageCode normaliza un código BCP 47 ("EN" -> "en", "pt_br" -> "pt-BR").
// ok es false si el código no es una etiqueta válida.
func CanonicalLanguageCode(code string) (canonical string, ok bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// ResolveLanguage devuelve el idioma activo para code.
// Código vacío: nil, nil (sin localización). Código inválido o sin idioma activo: domain.ErrLanguageNotFound.
// Los errores del repositorio se propagan sin traducir.
func ResolveLanguage(ctx context.Context, repo repository.LanguageRepository, code string) (*entity.Language, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	canonical, ok := CanonicalLanguageCode(code)
	if !ok {
		return nil, domain.ErrLanguageNotFound
	}
	lang, err := repo.FindActiveByCode(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if lang == nil {
		return nil, domain.ErrLanguageNotFound
	}
	return lang, nil
}
