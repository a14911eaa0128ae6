package i18n

var english = map[string]string{
	"auth.welcome":          "Welcome back",
	"auth.subtitle":         "Sign in to manage your tasks",
	"auth.email":            "Email",
	"auth.password":         "Password",
	"auth.emailRequired":    "Email is required",
	"auth.emailInvalid":     "Please enter a valid email",
	"auth.passwordRequired": "Password is required",

	"auth.passwordMinLength": "Password must be at least {{min}} characters",

	"auth.signedInAs": "signed in as {{email}}",

	"tasks.myTasks":       "My Tasks",
	"tasks.newTask":       "New Task",
	"tasks.editTask":      "Edit Task",
	"tasks.title":         "Title",
	"tasks.description":   "Description",
	"tasks.dueDate":       "Due date",
	"tasks.due":           "Due",
	"tasks.created":       "Created",
	"tasks.updated":       "Updated",
	"tasks.titleRequired": "Title is required",
	"tasks.dueInvalid":    "Unrecognised date",
	"tasks.emptyAll":      "No tasks yet",
	"tasks.emptyCreate":   "Press a to create your first task",
	"tasks.emptyFiltered": "No {{filter}} tasks",
	"tasks.notFound":      "This task no longer exists",
	"tasks.overdue":       "overdue",
	"tasks.today":         "today",
	"tasks.tomorrow":      "tomorrow",
	"tasks.inDays":        "in {{n}} days",

	"common.status.all":       "All",
	"common.status.pending":   "Pending",
	"common.status.completed": "Completed",
	"common.status.done":      "Done",

	"common.buttons.login":         "Sign in",
	"common.buttons.logout":        "Log out",
	"common.buttons.addNewTask":    "Add new task",
	"common.buttons.save":          "Save",
	"common.buttons.cancel":        "Cancel",
	"common.buttons.delete":        "Delete",
	"common.buttons.edit":          "Edit",
	"common.buttons.back":          "Back",
	"common.buttons.markCompleted": "Mark completed",
	"common.buttons.markPending":   "Mark pending",
	"common.buttons.theme":         "Theme",
	"common.buttons.language":      "العربية",
	"common.buttons.refresh":       "Refresh",
	"common.buttons.filter":        "Filter",
	"common.buttons.quit":          "Quit",
	"common.buttons.open":          "Open",
	"common.buttons.toggle":        "Toggle",
	"common.buttons.next":          "Next field",

	"errors.saveFailed": "Could not save: {{err}}",
}

var arabic = map[string]string{
	"auth.welcome":          "مرحباً بعودتك",
	"auth.subtitle":         "سجّل الدخول لإدارة مهامك",
	"auth.email":            "البريد الإلكتروني",
	"auth.password":         "كلمة المرور",
	"auth.emailRequired":    "البريد الإلكتروني مطلوب",
	"auth.emailInvalid":     "يرجى إدخال بريد إلكتروني صالح",
	"auth.passwordRequired": "كلمة المرور مطلوبة",

	"auth.passwordMinLength": "يجب أن تتكون كلمة المرور من {{min}} أحرف على الأقل",

	"auth.signedInAs": "تم تسجيل الدخول باسم {{email}}",

	"tasks.myTasks":       "مهامي",
	"tasks.newTask":       "مهمة جديدة",
	"tasks.editTask":      "تعديل المهمة",
	"tasks.title":         "العنوان",
	"tasks.description":   "الوصف",
	"tasks.dueDate":       "تاريخ الاستحقاق",
	"tasks.due":           "الاستحقاق",
	"tasks.created":       "أُنشئت",
	"tasks.updated":       "حُدّثت",
	"tasks.titleRequired": "العنوان مطلوب",
	"tasks.dueInvalid":    "تاريخ غير معروف",
	"tasks.emptyAll":      "لا توجد مهام بعد",
	"tasks.emptyCreate":   "اضغط a لإنشاء مهمتك الأولى",
	"tasks.emptyFiltered": "لا توجد مهام {{filter}}",
	"tasks.notFound":      "هذه المهمة لم تعد موجودة",
	"tasks.overdue":       "متأخرة",
	"tasks.today":         "اليوم",
	"tasks.tomorrow":      "غداً",
	"tasks.inDays":        "بعد {{n}} أيام",

	"common.status.all":       "الكل",
	"common.status.pending":   "قيد الانتظار",
	"common.status.completed": "مكتملة",
	"common.status.done":      "منجزة",

	"common.buttons.login":         "تسجيل الدخول",
	"common.buttons.logout":        "تسجيل الخروج",
	"common.buttons.addNewTask":    "إضافة مهمة جديدة",
	"common.buttons.save":          "حفظ",
	"common.buttons.cancel":        "إلغاء",
	"common.buttons.delete":        "حذف",
	"common.buttons.edit":          "تعديل",
	"common.buttons.back":          "رجوع",
	"common.buttons.markCompleted": "تحديد كمكتملة",
	"common.buttons.markPending":   "تحديد كقيد الانتظار",
	"common.buttons.theme":         "المظهر",
	"common.buttons.language":      "English",
	"common.buttons.refresh":       "تحديث",
	"common.buttons.filter":        "تصفية",
	"common.buttons.quit":          "خروج",
	"common.buttons.open":          "فتح",
	"common.buttons.toggle":        "تبديل",
	"common.buttons.next":          "الحقل التالي",

	"errors.saveFailed": "تعذّر الحفظ: {{err}}",
}
