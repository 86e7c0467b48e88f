// Package i18n resolves user-facing messages for the portal's three
// languages. Arabic is the site default; French and English are fallbacks
// negotiated from the Accept-Language header.
package i18n

import "strings"

const defaultLang = "ar"

var supported = map[string]bool{"ar": true, "fr": true, "en": true}

// DetectLanguage picks a supported language from an Accept-Language header
// value, defaulting to Arabic.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		lang := strings.ToLower(strings.TrimSpace(part))
		if i := strings.IndexAny(lang, "-;"); i >= 0 {
			lang = lang[:i]
		}
		if supported[lang] {
			return lang
		}
	}
	return defaultLang
}

var messages = map[string]map[string]string{
	"ar": {
		"auth.required":            "يجب تسجيل الدخول",
		"auth.invalid_token":       "جلسة غير صالحة",
		"auth.forbidden":           "ليس لديك الصلاحية اللازمة",
		"auth.invalid_credentials": "بيانات الاعتماد غير صحيحة",
		"auth.account_disabled":    "الحساب غير مفعل",
		"auth.login_failed":        "حدث خطأ أثناء تسجيل الدخول",
		"auth.signed_out":          "تم تسجيل الخروج",
		"register.invalid_email":   "البريد الإلكتروني غير صالح",
		"register.weak_password":   "كلمة المرور يجب أن تكون 8 أحرف على الأقل وتحتوي على حرف كبير وحرف صغير ورقم",
		"register.name_too_short":  "الاسم يجب أن يكون حرفين على الأقل",
		"register.email_taken":     "البريد الإلكتروني مسجل مسبقاً",
		"register.failed":          "حدث خطأ أثناء إنشاء الحساب",
		"register.success":         "تم إنشاء الحساب بنجاح",
	},
	"fr": {
		"auth.required":            "Connexion requise",
		"auth.invalid_token":       "Session invalide",
		"auth.forbidden":           "Vous n'avez pas les droits nécessaires",
		"auth.invalid_credentials": "Identifiants incorrects",
		"auth.account_disabled":    "Compte désactivé",
		"auth.login_failed":        "Erreur lors de la connexion",
		"auth.signed_out":          "Déconnexion réussie",
		"register.invalid_email":   "Adresse e-mail invalide",
		"register.weak_password":   "Le mot de passe doit contenir au moins 8 caractères, une majuscule, une minuscule et un chiffre",
		"register.name_too_short":  "Le nom doit contenir au moins 2 caractères",
		"register.email_taken":     "Cette adresse e-mail est déjà enregistrée",
		"register.failed":          "Erreur lors de la création du compte",
		"register.success":         "Compte créé avec succès",
	},
	"en": {
		"auth.required":            "Authentication required",
		"auth.invalid_token":       "Invalid session",
		"auth.forbidden":           "You do not have the required permission",
		"auth.invalid_credentials": "Invalid email or password",
		"auth.account_disabled":    "Account is disabled",
		"auth.login_failed":        "Login failed",
		"auth.signed_out":          "Signed out successfully",
		"register.invalid_email":   "Invalid email address",
		"register.weak_password":   "Password must be at least 8 characters with an uppercase letter, a lowercase letter and a digit",
		"register.name_too_short":  "Name must be at least 2 characters",
		"register.email_taken":     "This email is already registered",
		"register.failed":          "Failed to create account",
		"register.success":         "Account created successfully",
	},
}

// T translates a message code for the given language. Unknown languages fall
// back to Arabic; unknown codes fall back to the code itself.
func T(lang, code string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages[defaultLang][code]; ok {
		return s
	}
	return code
}

// Display resolves the bilingual display string for a record: the Arabic
// variant for Arabic readers, the French variant for French readers, the
// base value otherwise. Missing variants fall back to the base value.
func Display(lang, base, ar, fr string) string {
	switch lang {
	case "ar":
		if ar != "" {
			return ar
		}
	case "fr":
		if fr != "" {
			return fr
		}
	}
	return base
}
