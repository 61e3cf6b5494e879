// Package i18n provides translations for UI labels. Engine notification
// messages are not translated; they are part of the engine contract.
package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang = "en"

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Resume": {
		"pt": "Retomar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Skip": {
		"pt": "Pular",
		"es": "Saltar",
		"ru": "Пропустить",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Show timer": {
		"pt": "Mostrar timer",
		"es": "Mostrar temporizador",
		"ru": "Показать таймер",
	},
	"Preferences": {
		"pt": "Preferências",
		"es": "Preferencias",
		"ru": "Настройки",
	},
	"Save": {
		"pt": "Salvar",
		"es": "Guardar",
		"ru": "Сохранить",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"ru": "Отмена",
	},
	"Work": {
		"pt": "Trabalho",
		"es": "Trabajo",
		"ru": "Работа",
	},
	"Short break": {
		"pt": "Pausa curta",
		"es": "Descanso corto",
		"ru": "Короткий перерыв",
	},
	"Long break": {
		"pt": "Pausa longa",
		"es": "Descanso largo",
		"ru": "Длинный перерыв",
	},
	"Sessions": {
		"pt": "Sessões",
		"es": "Sesiones",
		"ru": "Сессии",
	},
	"General": {
		"pt": "Geral",
		"es": "General",
		"ru": "Общие",
	},
	"Tomatick Settings": {
		"pt": "Configurações do Tomatick",
		"es": "Configuración de Tomatick",
		"ru": "Настройки Tomatick",
	},
	"Play sound when a phase ends": {
		"pt": "Tocar som ao fim de cada fase",
		"es": "Reproducir sonido al final de cada fase",
		"ru": "Звук в конце каждой фазы",
	},
	"Launch at login": {
		"pt": "Iniciar com o sistema",
		"es": "Iniciar con el sistema",
		"ru": "Запускать при входе",
	},
	"Daily session target": {
		"pt": "Meta diária de sessões",
		"es": "Meta diaria de sesiones",
		"ru": "Дневная цель сессий",
	},
	"Schedule": {
		"pt": "Agenda",
		"es": "Horario",
		"ru": "Расписание",
	},
	"min": {
		"pt": "min",
		"es": "min",
		"ru": "мин",
	},
	"Edit settings.yaml to change durations": {
		"pt": "Edite settings.yaml para mudar as durações",
		"es": "Edite settings.yaml para cambiar las duraciones",
		"ru": "Измените settings.yaml, чтобы поменять длительности",
	},
	"paused": {
		"pt": "pausado",
		"es": "pausado",
		"ru": "пауза",
	},
}

func init() {
	lang = detectLanguage()
}

func detectLanguage() string {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("TOMATICK_LANG")); forcedLang != "" {
		return normalizeLanguage(forcedLang)
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.Println("Could not get user locale, defaulting to english")
		return "en"
	}
	return normalizeLanguage(userLocales[0])
}

func normalizeLanguage(value string) string {
	switch {
	case strings.HasPrefix(value, "pt"):
		return "pt"
	case strings.HasPrefix(value, "es"):
		return "es"
	case strings.HasPrefix(value, "ru"):
		return "ru"
	default:
		return "en"
	}
}

// T returns the translation of key for the detected language, or the key
// itself when no translation exists.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}
