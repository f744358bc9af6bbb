package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAddTracks         = "add_tracks"
	KeyDropHint          = "drop_hint"
	KeyPanic             = "panic"
	KeyPolicy            = "policy"
	KeyMasterVolume      = "master_volume"
	KeyOutputDevice      = "output_device"
	KeyReactions         = "reactions"
	KeyToggleOverlay     = "toggle_overlay"
	KeyPlay              = "play"
	KeyStop              = "stop"
	KeyTrim              = "trim"
	KeyTrimmed           = "trimmed"
	KeyHotkey            = "hotkey"
	KeyNoHotkey          = "no_hotkey"
	KeyHotkeyPrompt      = "hotkey_prompt"
	KeyHotkeyFailed      = "hotkey_failed"
	KeyRemove            = "remove"
	KeyReveal            = "reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyClear             = "clear"
	KeyPreview           = "preview"
	KeyStart             = "start"
	KeyEnd               = "end"
	KeyLoading           = "loading"
	KeyLoadFailed        = "load_failed"
	KeyInvalidTrim       = "invalid_trim"
	KeyNoAudioFiles      = "no_audio_files"
	KeyTracksAdded       = "tracks_added"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyOpacity           = "opacity"
	KeyAddReaction       = "add_reaction"
	KeyReactionTrigger   = "reaction_trigger"
	KeyReactionAction    = "reaction_action"
	KeyReactionImage     = "reaction_image"
	KeyReactionActive    = "reaction_active"
	KeyOverlayTitle      = "overlay_title"
	KeyOverlayEmpty      = "overlay_empty"
	KeyPolicyExclusive   = "policy_exclusive"
	KeyPolicyMix         = "policy_mix"
	KeyPolicyQueue       = "policy_queue"
	KeyDefaultDevice     = "default_device"
	KeyDeviceUnsupported = "device_unsupported"
)

// Language codes
const (
	LangSystem  = "system"
	LangEnglish = "en"
	LangKorean  = "ko"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem {
		// Use system locale - simplified to English for now
		lang = LangEnglish
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
	if texts, exists := l.texts[LangEnglish]; exists {
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
		LangEnglish: "English",
		LangKorean:  "한국어",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:          "Soundboard",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAddTracks:         "Add sounds",
		KeyDropHint:          "Drop audio files here or use Add sounds",
		KeyPanic:             "PANIC",
		KeyPolicy:            "Policy",
		KeyMasterVolume:      "Master",
		KeyOutputDevice:      "Output",
		KeyReactions:         "Reactions",
		KeyToggleOverlay:     "Overlay",
		KeyPlay:              "Play",
		KeyStop:              "Stop",
		KeyTrim:              "CUT",
		KeyTrimmed:           "TRIMMED",
		KeyHotkey:            "Hotkey",
		KeyNoHotkey:          "Set key",
		KeyHotkeyPrompt:      "Press keys, Enter to save, Esc to cancel, Backspace to undo",
		KeyHotkeyFailed:      "Hotkey could not be registered",
		KeyRemove:            "Remove",
		KeyReveal:            "Reveal",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyClear:             "Clear",
		KeyPreview:           "Preview",
		KeyStart:             "Start",
		KeyEnd:               "End",
		KeyLoading:           "Loading...",
		KeyLoadFailed:        "Could not load audio",
		KeyInvalidTrim:       "Invalid range",
		KeyNoAudioFiles:      "No audio files found",
		KeyTracksAdded:       "Sounds added",
		KeyErrorOpeningFile:  "Error opening file",
		KeyOpacity:           "Background opacity",
		KeyAddReaction:       "Add reaction",
		KeyReactionTrigger:   "Trigger",
		KeyReactionAction:    "Action",
		KeyReactionImage:     "Image",
		KeyReactionActive:    "Show",
		KeyOverlayTitle:      "Reaction guide",
		KeyOverlayEmpty:      "No active reactions",
		KeyPolicyExclusive:   "Exclusive",
		KeyPolicyMix:         "Mix",
		KeyPolicyQueue:       "Queue",
		KeyDefaultDevice:     "System default",
		KeyDeviceUnsupported: "Output device not supported",
	}

	// Korean texts
	l.texts[LangKorean] = map[string]string{
		KeyAppTitle:          "사운드보드",
		KeyFile:              "파일",
		KeyLanguage:          "언어",
		KeyAddTracks:         "사운드 추가",
		KeyDropHint:          "오디오 파일을 여기로 끌어오거나 사운드 추가를 누르세요",
		KeyPanic:             "전체 정지",
		KeyPolicy:            "재생 정책",
		KeyMasterVolume:      "마스터",
		KeyOutputDevice:      "출력",
		KeyReactions:         "리액션",
		KeyToggleOverlay:     "오버레이",
		KeyPlay:              "재생",
		KeyStop:              "정지",
		KeyTrim:              "자르기",
		KeyTrimmed:           "구간 설정됨",
		KeyHotkey:            "단축키",
		KeyNoHotkey:          "키 설정",
		KeyHotkeyPrompt:      "키를 누르세요. Enter 저장, Esc 취소, Backspace 되돌리기",
		KeyHotkeyFailed:      "단축키를 등록할 수 없습니다",
		KeyRemove:            "삭제",
		KeyReveal:            "위치 열기",
		KeySave:              "저장",
		KeyCancel:            "취소",
		KeyClear:             "지우기",
		KeyPreview:           "미리 듣기",
		KeyStart:             "시작",
		KeyEnd:               "끝",
		KeyLoading:           "불러오는 중...",
		KeyLoadFailed:        "오디오를 불러올 수 없습니다",
		KeyInvalidTrim:       "잘못된 구간",
		KeyNoAudioFiles:      "오디오 파일이 없습니다",
		KeyTracksAdded:       "사운드가 추가되었습니다",
		KeyErrorOpeningFile:  "파일 열기 오류",
		KeyOpacity:           "배경 투명도",
		KeyAddReaction:       "리액션 추가",
		KeyReactionTrigger:   "후원",
		KeyReactionAction:    "리액션",
		KeyReactionImage:     "이미지",
		KeyReactionActive:    "표시",
		KeyOverlayTitle:      "리액션 안내",
		KeyOverlayEmpty:      "활성화된 리액션이 없습니다",
		KeyPolicyExclusive:   "단독",
		KeyPolicyMix:         "동시",
		KeyPolicyQueue:       "대기열",
		KeyDefaultDevice:     "시스템 기본값",
		KeyDeviceUnsupported: "지원하지 않는 출력 장치",
	}
}
