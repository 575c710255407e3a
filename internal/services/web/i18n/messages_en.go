// Package i18n registers message catalogs for the web service locales.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Landing page
	message.SetString(lang, "title.landing", "Megan | Your browser voice assistant")
	message.SetString(lang, "meta.description", "Megan is a voice assistant that lives in your browser: search, navigate, and dictate hands-free.")
	message.SetString(lang, "landing.tagline", "Your voice, your browser. Megan listens so your hands can rest.")
	message.SetString(lang, "landing.hero_cta", "Get started")
	message.SetString(lang, "landing.hero_secondary", "Watch the tutorial")
	message.SetString(lang, "landing.feature.voice_title", "Voice-first browsing")
	message.SetString(lang, "landing.feature.voice_body", "Open tabs, search, and navigate with natural speech.")
	message.SetString(lang, "landing.feature.dictation_title", "Instant dictation")
	message.SetString(lang, "landing.feature.dictation_body", "Dictate into any text field in any web page.")
	message.SetString(lang, "landing.feature.privacy_title", "Private by design")
	message.SetString(lang, "landing.feature.privacy_body", "Audio is processed on demand and never stored.")

	// Navigation and user menu
	message.SetString(lang, "nav.get_started", "Get Started")
	message.SetString(lang, "nav.my_account", "My Account")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.terms", "Terms of Service")
	message.SetString(lang, "nav.privacy", "Privacy Policy")
	message.SetString(lang, "nav.tutorial", "Tutorial")
	message.SetString(lang, "nav.contact", "Contact")
	message.SetString(lang, "nav.logout", "Log out")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_ru", "RU")

	// Auth page
	message.SetString(lang, "title.auth", "Megan | Sign In")
	message.SetString(lang, "auth.welcome", "Welcome to Megan")
	message.SetString(lang, "auth.subtitle", "Sign in to your account or create a new one")
	message.SetString(lang, "auth.sign_in", "Sign In")
	message.SetString(lang, "auth.sign_up", "Sign Up")
	message.SetString(lang, "auth.email", "Email")
	message.SetString(lang, "auth.password", "Password")
	message.SetString(lang, "auth.full_name", "Full Name")
	message.SetString(lang, "auth.confirm_password", "Confirm Password")
	message.SetString(lang, "auth.enter_email", "Enter your email")
	message.SetString(lang, "auth.enter_password", "Enter your password")
	message.SetString(lang, "auth.enter_full_name", "Enter your full name")
	message.SetString(lang, "auth.create_password", "Create a password")
	message.SetString(lang, "auth.confirm_your_password", "Confirm your password")
	message.SetString(lang, "auth.remember_me", "Remember me")
	message.SetString(lang, "auth.forgot_password", "Forgot password?")
	message.SetString(lang, "auth.create_account", "Create Account")
	message.SetString(lang, "auth.agree_prefix", "I agree to the")
	message.SetString(lang, "auth.agree_and", "and")
	message.SetString(lang, "auth.success", "Successfully authenticated")

	// Error banners (shared across flows)
	message.SetString(lang, "error.invalid_credentials", "Invalid email or password")
	message.SetString(lang, "error.account_blocked", "Your account has been blocked")
	message.SetString(lang, "error.too_many_attempts", "Too many attempts. Please try again later")
	message.SetString(lang, "error.failed_to_login", "Failed to log in")
	message.SetString(lang, "error.email_exists", "This email is already registered")
	message.SetString(lang, "error.failed_to_register", "Failed to create account")
	message.SetString(lang, "error.unable_to_connect", "Unable to connect to the server")
	message.SetString(lang, "error.unexpected", "An unexpected error occurred")
	message.SetString(lang, "error.passwords_mismatch", "Passwords do not match")
	message.SetString(lang, "error.no_access_token", "The server did not return an access token")
	message.SetString(lang, "error.email_unknown", "Email address not found")
	message.SetString(lang, "error.resend_failed", "Failed to resend the email")
	message.SetString(lang, "error.send_failed", "Failed to send the email")
	message.SetString(lang, "error.confirm_failed", "Confirmation failed")
	message.SetString(lang, "error.link_invalid", "The link is invalid or has expired")
	message.SetString(lang, "error.change_password_failed", "Failed to change password")
	message.SetString(lang, "error.delete_failed", "Failed to delete account")
	message.SetString(lang, "error.not_signed_in", "You need to sign in first")

	// Flash toasts
	message.SetString(lang, "toast.logged_in", "Successfully logged in!")
	message.SetString(lang, "toast.confirmation_sent", "Confirmation email sent. Check your inbox.")
	message.SetString(lang, "toast.email_confirmed", "Email confirmed! You can now sign in.")
	message.SetString(lang, "toast.already_confirmed", "Your account is already confirmed! You can sign in.")
	message.SetString(lang, "toast.resend_success", "Confirmation email sent again.")
	message.SetString(lang, "toast.reset_sent", "Password reset email sent. Check your inbox.")
	message.SetString(lang, "toast.reset_resent", "Password change email sent again.")
	message.SetString(lang, "toast.password_changed", "Password changed successfully! You can now sign in.")
	message.SetString(lang, "toast.password_updated", "Password changed successfully")
	message.SetString(lang, "toast.change_link_sent", "Password change link sent to your email.")
	message.SetString(lang, "toast.account_deleted", "Account deleted successfully")
	message.SetString(lang, "toast.logged_out", "You have been logged out")

	// Confirm email page
	message.SetString(lang, "title.confirm_email", "Megan | Confirm Email")
	message.SetString(lang, "confirm.pending_title", "Confirming your email...")
	message.SetString(lang, "confirm.pending_body", "Please wait while we verify your token.")
	message.SetString(lang, "confirm.success_title", "Email confirmed!")
	message.SetString(lang, "confirm.success_body", "Your account has been confirmed. You will be redirected to the sign-in page in a few seconds.")
	message.SetString(lang, "confirm.error_title", "Confirmation error")
	message.SetString(lang, "confirm.go_to_login", "Go to sign in")
	message.SetString(lang, "confirm.back_to_login", "Back to sign in")
	message.SetString(lang, "confirm.request_new_link", "Request a new link")
	message.SetString(lang, "confirm.check_title", "Confirm your email")
	message.SetString(lang, "confirm.check_body", "We sent a confirmation link to %s. Please check your inbox and follow the link to finish registration.")
	message.SetString(lang, "confirm.your_email", "your email address")
	message.SetString(lang, "confirm.resend", "Resend email")
	message.SetString(lang, "confirm.resend_in", "Retry in %ds")
	message.SetString(lang, "confirm.sending", "Sending...")

	// Forgot password page
	message.SetString(lang, "title.forgot_password", "Megan | Password Recovery")
	message.SetString(lang, "forgot.title", "Password recovery")
	message.SetString(lang, "forgot.body", "Enter your email to receive a password change link.")
	message.SetString(lang, "forgot.your_email", "Your email")
	message.SetString(lang, "forgot.send_link", "Send link")
	message.SetString(lang, "forgot.sent_title", "Email sent!")
	message.SetString(lang, "forgot.sent_body", "Check your inbox and follow the instructions to change your password.")
	message.SetString(lang, "forgot.error_title", "Error")
	message.SetString(lang, "forgot.try_again", "Try again")

	// Confirm password page
	message.SetString(lang, "title.confirm_password", "Megan | Change Password")
	message.SetString(lang, "reset.title", "Change password")
	message.SetString(lang, "reset.body", "Enter a new password for your account.")
	message.SetString(lang, "reset.new_password", "New password")
	message.SetString(lang, "reset.repeat_password", "Repeat new password")
	message.SetString(lang, "reset.submit", "Change password")
	message.SetString(lang, "reset.saving", "Saving...")
	message.SetString(lang, "reset.success_title", "Password changed!")
	message.SetString(lang, "reset.success_body", "Your password has been changed. You will be redirected to the sign-in page in a few seconds.")
	message.SetString(lang, "reset.error_title", "Error")
	message.SetString(lang, "reset.sent_body", "We sent a password change link to %s. Please check your inbox and follow the link to finish changing your password.")

	// Account page
	message.SetString(lang, "title.account", "Megan | Account")
	message.SetString(lang, "account.tab_account", "Account")
	message.SetString(lang, "account.tab_pro", "Pro")
	message.SetString(lang, "account.tab_referral", "Referral")
	message.SetString(lang, "account.profile_settings", "Profile Settings")
	message.SetString(lang, "account.manage_info", "Manage your account information")
	message.SetString(lang, "account.active", "Active account")
	message.SetString(lang, "account.user", "User")
	message.SetString(lang, "account.change_password", "Change password")
	message.SetString(lang, "account.update_password_hint", "Keep your account secure with a fresh password")
	message.SetString(lang, "account.current_password", "Current password")
	message.SetString(lang, "account.new_password", "New password")
	message.SetString(lang, "account.confirm_new_password", "Confirm new password")
	message.SetString(lang, "account.update_password", "Update password")
	message.SetString(lang, "account.send_change_link", "Email me a change-password link")
	message.SetString(lang, "account.danger_zone", "Danger Zone")
	message.SetString(lang, "account.delete_warning", "Deleting your account is permanent and cannot be undone.")
	message.SetString(lang, "account.delete_account", "Delete account")
	message.SetString(lang, "account.coming_soon", "Coming Soon")
	message.SetString(lang, "account.pro_title", "Pro Features")
	message.SetString(lang, "account.pro_note", "Pro features will be available in the near future")
	message.SetString(lang, "account.referral_title", "Referral Program")
	message.SetString(lang, "account.referral_note", "The referral program will be available in the near future")
	message.SetString(lang, "account.referral_link", "Your referral link")
	message.SetString(lang, "account.copy", "Copy")

	// Static pages
	message.SetString(lang, "title.about", "Megan | About")
	message.SetString(lang, "about.heading", "About Megan")
	message.SetString(lang, "about.body", "Megan started as a weekend experiment: what if the browser could simply listen? Today it is a full voice assistant that searches, navigates, and dictates wherever you browse.")
	message.SetString(lang, "title.contact", "Megan | Contact")
	message.SetString(lang, "contact.heading", "Contact us")
	message.SetString(lang, "contact.body", "Questions, feedback, or partnership ideas? Write to us and we will get back within two business days.")
	message.SetString(lang, "contact.email_label", "Email")
	message.SetString(lang, "title.terms", "Megan | Terms of Service")
	message.SetString(lang, "terms.heading", "Terms of Service")
	message.SetString(lang, "terms.body", "By using Megan you agree to use the service lawfully, keep your credentials private, and accept that the service is provided as-is while in active development.")
	message.SetString(lang, "title.privacy", "Megan | Privacy Policy")
	message.SetString(lang, "privacy.heading", "Privacy Policy")
	message.SetString(lang, "privacy.body", "We collect only what the assistant needs to answer you. Voice audio is processed on demand and never stored. You can delete your account and all associated data at any time.")
	message.SetString(lang, "title.tutorial", "Megan | Tutorial")
	message.SetString(lang, "tutorial.heading", "Getting started with Megan")
	message.SetString(lang, "tutorial.step_install", "Install the browser extension and pin it to your toolbar.")
	message.SetString(lang, "tutorial.step_activate", "Press the microphone icon or say the wake word to start listening.")
	message.SetString(lang, "tutorial.step_commands", "Try commands like \"open my mail\" or \"search for pancake recipes\".")
	message.SetString(lang, "tutorial.step_dictate", "Click any text field and say \"start dictation\" to type by voice.")
	message.SetString(lang, "title.test_i18n", "Megan | Locale Test")
	message.SetString(lang, "testi18n.heading", "Locale test page")
	message.SetString(lang, "testi18n.current", "Current locale: %s")

	// Error pages
	message.SetString(lang, "title.not_found", "Megan | Page Not Found")
	message.SetString(lang, "error.page.not_found", "This page does not exist.")
	message.SetString(lang, "error.page.server", "Something went wrong on our side.")
	message.SetString(lang, "error.page.back_home", "Back to home")
}
