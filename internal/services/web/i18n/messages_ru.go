package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	// Landing page
	message.SetString(lang, "title.landing", "Megan | Голосовой помощник в браузере")
	message.SetString(lang, "meta.description", "Megan — голосовой помощник, который живёт в вашем браузере: ищите, переходите по сайтам и диктуйте без рук.")
	message.SetString(lang, "landing.tagline", "Ваш голос, ваш браузер. Megan слушает, чтобы ваши руки отдыхали.")
	message.SetString(lang, "landing.hero_cta", "Начать")
	message.SetString(lang, "landing.hero_secondary", "Смотреть обучение")
	message.SetString(lang, "landing.feature.voice_title", "Управление голосом")
	message.SetString(lang, "landing.feature.voice_body", "Открывайте вкладки, ищите и переходите по сайтам обычной речью.")
	message.SetString(lang, "landing.feature.dictation_title", "Мгновенная диктовка")
	message.SetString(lang, "landing.feature.dictation_body", "Диктуйте в любое текстовое поле на любой странице.")
	message.SetString(lang, "landing.feature.privacy_title", "Приватность по умолчанию")
	message.SetString(lang, "landing.feature.privacy_body", "Аудио обрабатывается по запросу и никогда не сохраняется.")

	// Navigation and user menu
	message.SetString(lang, "nav.get_started", "Начать")
	message.SetString(lang, "nav.my_account", "Мой аккаунт")
	message.SetString(lang, "nav.about", "О нас")
	message.SetString(lang, "nav.terms", "Условия использования")
	message.SetString(lang, "nav.privacy", "Политика конфиденциальности")
	message.SetString(lang, "nav.tutorial", "Обучение")
	message.SetString(lang, "nav.contact", "Контакты")
	message.SetString(lang, "nav.logout", "Выйти")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_ru", "RU")

	// Auth page
	message.SetString(lang, "title.auth", "Megan | Вход")
	message.SetString(lang, "auth.welcome", "Добро пожаловать в Megan")
	message.SetString(lang, "auth.subtitle", "Войдите в аккаунт или создайте новый")
	message.SetString(lang, "auth.sign_in", "Войти")
	message.SetString(lang, "auth.sign_up", "Регистрация")
	message.SetString(lang, "auth.email", "Email")
	message.SetString(lang, "auth.password", "Пароль")
	message.SetString(lang, "auth.full_name", "Полное имя")
	message.SetString(lang, "auth.confirm_password", "Подтвердите пароль")
	message.SetString(lang, "auth.enter_email", "Введите ваш email")
	message.SetString(lang, "auth.enter_password", "Введите ваш пароль")
	message.SetString(lang, "auth.enter_full_name", "Введите ваше полное имя")
	message.SetString(lang, "auth.create_password", "Придумайте пароль")
	message.SetString(lang, "auth.confirm_your_password", "Подтвердите ваш пароль")
	message.SetString(lang, "auth.remember_me", "Запомнить меня")
	message.SetString(lang, "auth.forgot_password", "Забыли пароль?")
	message.SetString(lang, "auth.create_account", "Создать аккаунт")
	message.SetString(lang, "auth.agree_prefix", "Я соглашаюсь с")
	message.SetString(lang, "auth.agree_and", "и")
	message.SetString(lang, "auth.success", "Успешная авторизация")

	// Error banners (shared across flows)
	message.SetString(lang, "error.invalid_credentials", "Неверный email или пароль")
	message.SetString(lang, "error.account_blocked", "Ваш аккаунт заблокирован")
	message.SetString(lang, "error.too_many_attempts", "Слишком много попыток. Попробуйте позже")
	message.SetString(lang, "error.failed_to_login", "Не удалось войти")
	message.SetString(lang, "error.email_exists", "Email уже используется")
	message.SetString(lang, "error.failed_to_register", "Не удалось создать аккаунт")
	message.SetString(lang, "error.unable_to_connect", "Не удалось подключиться к серверу")
	message.SetString(lang, "error.unexpected", "Произошла непредвиденная ошибка")
	message.SetString(lang, "error.passwords_mismatch", "Пароли не совпадают")
	message.SetString(lang, "error.no_access_token", "Сервер не вернул токен доступа")
	message.SetString(lang, "error.email_unknown", "Email не найден")
	message.SetString(lang, "error.resend_failed", "Не удалось отправить письмо повторно")
	message.SetString(lang, "error.send_failed", "Не удалось отправить письмо")
	message.SetString(lang, "error.confirm_failed", "Ошибка подтверждения")
	message.SetString(lang, "error.link_invalid", "Ссылка недействительна или устарела")
	message.SetString(lang, "error.change_password_failed", "Не удалось изменить пароль")
	message.SetString(lang, "error.delete_failed", "Не удалось удалить аккаунт")
	message.SetString(lang, "error.not_signed_in", "Сначала нужно войти в аккаунт")

	// Flash toasts
	message.SetString(lang, "toast.logged_in", "Вы успешно вошли!")
	message.SetString(lang, "toast.confirmation_sent", "Письмо с подтверждением отправлено. Проверьте почту.")
	message.SetString(lang, "toast.email_confirmed", "Email подтвержден! Теперь вы можете войти.")
	message.SetString(lang, "toast.already_confirmed", "Ваш аккаунт уже подтвержден! Вы можете войти.")
	message.SetString(lang, "toast.resend_success", "Письмо с подтверждением отправлено повторно.")
	message.SetString(lang, "toast.reset_sent", "Письмо для смены пароля отправлено. Проверьте почту.")
	message.SetString(lang, "toast.reset_resent", "Письмо для смены пароля отправлено повторно.")
	message.SetString(lang, "toast.password_changed", "Пароль успешно изменен! Теперь вы можете войти.")
	message.SetString(lang, "toast.password_updated", "Пароль успешно изменен")
	message.SetString(lang, "toast.change_link_sent", "Ссылка для смены пароля отправлена на вашу почту.")
	message.SetString(lang, "toast.account_deleted", "Аккаунт успешно удален")
	message.SetString(lang, "toast.logged_out", "Вы вышли из аккаунта")

	// Confirm email page
	message.SetString(lang, "title.confirm_email", "Megan | Подтверждение email")
	message.SetString(lang, "confirm.pending_title", "Подтверждаем ваш email...")
	message.SetString(lang, "confirm.pending_body", "Пожалуйста, подождите, пока мы проверяем токен.")
	message.SetString(lang, "confirm.success_title", "Email подтвержден!")
	message.SetString(lang, "confirm.success_body", "Ваш аккаунт подтвержден. Через несколько секунд вы будете перенаправлены на страницу входа.")
	message.SetString(lang, "confirm.error_title", "Ошибка подтверждения")
	message.SetString(lang, "confirm.go_to_login", "Перейти ко входу")
	message.SetString(lang, "confirm.back_to_login", "Вернуться ко входу")
	message.SetString(lang, "confirm.request_new_link", "Запросить новую ссылку")
	message.SetString(lang, "confirm.check_title", "Подтвердите ваш email")
	message.SetString(lang, "confirm.check_body", "Мы отправили ссылку для подтверждения на %s. Проверьте почту и перейдите по ссылке, чтобы завершить регистрацию.")
	message.SetString(lang, "confirm.your_email", "ваш email")
	message.SetString(lang, "confirm.resend", "Отправить письмо повторно")
	message.SetString(lang, "confirm.resend_in", "Повтор через %d с")
	message.SetString(lang, "confirm.sending", "Отправка...")

	// Forgot password page
	message.SetString(lang, "title.forgot_password", "Megan | Восстановление пароля")
	message.SetString(lang, "forgot.title", "Восстановление пароля")
	message.SetString(lang, "forgot.body", "Введите ваш email, чтобы получить ссылку для смены пароля.")
	message.SetString(lang, "forgot.your_email", "Ваш email")
	message.SetString(lang, "forgot.send_link", "Отправить ссылку")
	message.SetString(lang, "forgot.sent_title", "Письмо отправлено!")
	message.SetString(lang, "forgot.sent_body", "Проверьте почту и следуйте инструкциям, чтобы изменить пароль.")
	message.SetString(lang, "forgot.error_title", "Ошибка")
	message.SetString(lang, "forgot.try_again", "Попробовать снова")

	// Confirm password page
	message.SetString(lang, "title.confirm_password", "Megan | Смена пароля")
	message.SetString(lang, "reset.title", "Смена пароля")
	message.SetString(lang, "reset.body", "Введите новый пароль для вашего аккаунта.")
	message.SetString(lang, "reset.new_password", "Новый пароль")
	message.SetString(lang, "reset.repeat_password", "Повторите новый пароль")
	message.SetString(lang, "reset.submit", "Изменить пароль")
	message.SetString(lang, "reset.saving", "Сохранение...")
	message.SetString(lang, "reset.success_title", "Пароль изменен!")
	message.SetString(lang, "reset.success_body", "Ваш пароль изменен. Через несколько секунд вы будете перенаправлены на страницу входа.")
	message.SetString(lang, "reset.error_title", "Ошибка")
	message.SetString(lang, "reset.sent_body", "Мы отправили ссылку для смены пароля на %s. Проверьте почту и перейдите по ссылке, чтобы завершить смену пароля.")

	// Account page
	message.SetString(lang, "title.account", "Megan | Аккаунт")
	message.SetString(lang, "account.tab_account", "Аккаунт")
	message.SetString(lang, "account.tab_pro", "Pro")
	message.SetString(lang, "account.tab_referral", "Рефералы")
	message.SetString(lang, "account.profile_settings", "Настройки профиля")
	message.SetString(lang, "account.manage_info", "Управляйте информацией вашего аккаунта")
	message.SetString(lang, "account.active", "Активный аккаунт")
	message.SetString(lang, "account.user", "Пользователь")
	message.SetString(lang, "account.change_password", "Смена пароля")
	message.SetString(lang, "account.update_password_hint", "Обновляйте пароль, чтобы аккаунт оставался в безопасности")
	message.SetString(lang, "account.current_password", "Текущий пароль")
	message.SetString(lang, "account.new_password", "Новый пароль")
	message.SetString(lang, "account.confirm_new_password", "Подтвердите новый пароль")
	message.SetString(lang, "account.update_password", "Обновить пароль")
	message.SetString(lang, "account.send_change_link", "Отправить ссылку для смены пароля на почту")
	message.SetString(lang, "account.danger_zone", "Опасная зона")
	message.SetString(lang, "account.delete_warning", "Удаление аккаунта необратимо и не может быть отменено.")
	message.SetString(lang, "account.delete_account", "Удалить аккаунт")
	message.SetString(lang, "account.coming_soon", "Скоро")
	message.SetString(lang, "account.pro_title", "Pro-возможности")
	message.SetString(lang, "account.pro_note", "Pro-возможности будут доступны в ближайшее время")
	message.SetString(lang, "account.referral_title", "Реферальная программа")
	message.SetString(lang, "account.referral_note", "Реферальная программа будет доступна в ближайшее время")
	message.SetString(lang, "account.referral_link", "Ваша реферальная ссылка")
	message.SetString(lang, "account.copy", "Копировать")

	// Static pages
	message.SetString(lang, "title.about", "Megan | О нас")
	message.SetString(lang, "about.heading", "О Megan")
	message.SetString(lang, "about.body", "Megan начиналась как эксперимент выходного дня: что если браузер сможет просто слушать? Сегодня это полноценный голосовой помощник, который ищет, ведёт по сайтам и диктует там, где вы работаете.")
	message.SetString(lang, "title.contact", "Megan | Контакты")
	message.SetString(lang, "contact.heading", "Свяжитесь с нами")
	message.SetString(lang, "contact.body", "Вопросы, отзывы или идеи сотрудничества? Напишите нам, и мы ответим в течение двух рабочих дней.")
	message.SetString(lang, "contact.email_label", "Email")
	message.SetString(lang, "title.terms", "Megan | Условия использования")
	message.SetString(lang, "terms.heading", "Условия использования")
	message.SetString(lang, "terms.body", "Используя Megan, вы соглашаетесь применять сервис законно, хранить свои учетные данные в тайне и принимаете, что сервис предоставляется как есть на этапе активной разработки.")
	message.SetString(lang, "title.privacy", "Megan | Политика конфиденциальности")
	message.SetString(lang, "privacy.heading", "Политика конфиденциальности")
	message.SetString(lang, "privacy.body", "Мы собираем только то, что нужно помощнику, чтобы ответить вам. Голосовое аудио обрабатывается по запросу и никогда не сохраняется. Вы можете удалить аккаунт и все связанные данные в любой момент.")
	message.SetString(lang, "title.tutorial", "Megan | Обучение")
	message.SetString(lang, "tutorial.heading", "Начало работы с Megan")
	message.SetString(lang, "tutorial.step_install", "Установите расширение для браузера и закрепите его на панели.")
	message.SetString(lang, "tutorial.step_activate", "Нажмите на значок микрофона или произнесите ключевое слово, чтобы начать.")
	message.SetString(lang, "tutorial.step_commands", "Попробуйте команды вроде «открой мою почту» или «найди рецепты блинов».")
	message.SetString(lang, "tutorial.step_dictate", "Кликните в любое текстовое поле и скажите «начни диктовку», чтобы печатать голосом.")
	message.SetString(lang, "title.test_i18n", "Megan | Проверка локали")
	message.SetString(lang, "testi18n.heading", "Страница проверки локали")
	message.SetString(lang, "testi18n.current", "Текущая локаль: %s")

	// Error pages
	message.SetString(lang, "title.not_found", "Megan | Страница не найдена")
	message.SetString(lang, "error.page.not_found", "Такой страницы не существует.")
	message.SetString(lang, "error.page.server", "Что-то пошло не так на нашей стороне.")
	message.SetString(lang, "error.page.back_home", "На главную")
}
