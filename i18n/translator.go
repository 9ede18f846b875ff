package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "tag" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "undefined_required":
			return "必須の引数が未定義です"
		case "unhandled_tag":
			return "ハンドラのないタグです"
		case "tag_missing":
			return "タグがありません"
		case "tag_unknown":
			return "未知のタグです"
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "missing_field":
			return "フィールドがありません"
		case "empty_variant_name":
			return "バリアント名が空です"
		case "duplicate_variant":
			return "バリアント名が重複しています"
		case "duplicate_field":
			return "フィールド名が重複しています"
		case "type_marker_call":
			return "型マーカーはコンストラクタではありません"
		case "unknown_derive":
			return "未知の導出名です"
		case "parse_error":
			return "解析エラー"
		case "encode_error":
			return "符号化エラー"
		case "manifest_invalid":
			return "マニフェストが不正です"
		}
	default: // "en"
		switch code {
		case "undefined_required":
			return "required argument is undefined"
		case "unhandled_tag":
			return "no handler for tag"
		case "tag_missing":
			return "tag missing"
		case "tag_unknown":
			return "unknown tag"
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "missing_field":
			return "missing field"
		case "empty_variant_name":
			return "variant name is empty"
		case "duplicate_variant":
			return "duplicate variant name"
		case "duplicate_field":
			return "duplicate field name"
		case "type_marker_call":
			return "type marker is not a constructor"
		case "unknown_derive":
			return "unknown derive name"
		case "parse_error":
			return "parse error"
		case "encode_error":
			return "encode error"
		case "manifest_invalid":
			return "manifest invalid"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
