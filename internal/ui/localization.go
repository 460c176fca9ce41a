package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyUploadSection     = "upload_section"
	KeyDownloadSection   = "download_section"
	KeyChooseFile        = "choose_file"
	KeyNoFileSelected    = "no_file_selected"
	KeyUpload            = "upload"
	KeyDownload          = "download"
	KeyEnterFileName     = "enter_file_name"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyAskWhereToSave    = "ask_where_to_save"
	KeyRevealAfterSave   = "reveal_after_save"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyDownloadSaved     = "download_saved"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyServer            = "server"
	KeyWorking           = "working"
	KeyShowInFolder      = "show_in_folder"
	KeyOpen              = "open"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "File Upload and Download",
		KeyUploadSection:     "Upload File",
		KeyDownloadSection:   "Download File",
		KeyChooseFile:        "Choose file…",
		KeyNoFileSelected:    "No file selected",
		KeyUpload:            "Upload",
		KeyDownload:          "Download",
		KeyEnterFileName:     "Enter file name",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeyAskWhereToSave:    "Ask where to save each file",
		KeyRevealAfterSave:   "Show saved file in folder",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloadSaved:     "Download saved",
		KeyErrorOpeningFile:  "Error opening file",
		KeyServer:            "Server",
		KeyWorking:           "Working…",
		KeyShowInFolder:      "Show in folder",
		KeyOpen:              "Open",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузка и скачивание файлов",
		KeyUploadSection:     "Загрузить файл",
		KeyDownloadSection:   "Скачать файл",
		KeyChooseFile:        "Выбрать файл…",
		KeyNoFileSelected:    "Файл не выбран",
		KeyUpload:            "Загрузить",
		KeyDownload:          "Скачать",
		KeyEnterFileName:     "Введите имя файла",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeyAskWhereToSave:    "Спрашивать, куда сохранять",
		KeyRevealAfterSave:   "Показывать файл в папке",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloadSaved:     "Файл сохранён",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyServer:            "Сервер",
		KeyWorking:           "Выполняется…",
		KeyShowInFolder:      "Показать в папке",
		KeyOpen:              "Открыть",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Envio e Download de Arquivos",
		KeyUploadSection:     "Enviar Arquivo",
		KeyDownloadSection:   "Baixar Arquivo",
		KeyChooseFile:        "Escolher arquivo…",
		KeyNoFileSelected:    "Nenhum arquivo selecionado",
		KeyUpload:            "Enviar",
		KeyDownload:          "Baixar",
		KeyEnterFileName:     "Digite o nome do arquivo",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeyAskWhereToSave:    "Perguntar onde salvar",
		KeyRevealAfterSave:   "Mostrar arquivo na pasta",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloadSaved:     "Download salvo",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyServer:            "Servidor",
		KeyWorking:           "Processando…",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyOpen:              "Abrir",
	}
}
