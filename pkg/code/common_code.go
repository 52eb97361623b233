package code

// Common codes // 通用状态码
var (
	Success               = NewSuss(200, lang{en: "Success", zh_cn: "成功"})
	SuccessNoUpdate       = NewSuss(201, lang{en: "Success, no update", zh_cn: "成功，无更新"})
	SuccessPasswordUpdate = NewSuss(202, lang{en: "Password updated successfully", zh_cn: "密码修改成功"})

	ErrorServerInternal       = NewError(10000000, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	ErrorInvalidParams        = NewError(10000001, lang{en: "Invalid params", zh_cn: "入参错误"})
	ErrorNotFoundAPI          = NewError(10000002, lang{en: "Not found api", zh_cn: "找不到API"})
	ErrorRequestTimeout       = NewError(10000003, lang{en: "Request timeout", zh_cn: "请求超时"})
	ErrorDBQuery              = NewError(10000005, lang{en: "Database query error", zh_cn: "数据库查询错误"})
	ErrorNotUserAuthToken     = NewError(10000006, lang{en: "Missing user authorization token", zh_cn: "缺少用户授权令牌"})
	ErrorInvalidUserAuthToken = NewError(10000007, lang{en: "Invalid user authorization token", zh_cn: "无效的用户授权令牌"})
)

// User codes // 用户状态码
var (
	ErrorUserRegister            = NewError(10010001, lang{en: "User register failed", zh_cn: "用户注册失败"})
	ErrorUserRegisterIsDisable   = NewError(10010002, lang{en: "User register is disabled", zh_cn: "用户注册已关闭"})
	ErrorUserAlreadyExists       = NewError(10010003, lang{en: "Username already exists", zh_cn: "用户名已存在"})
	ErrorUserEmailAlreadyExists  = NewError(10010004, lang{en: "Email already exists", zh_cn: "邮箱已存在"})
	ErrorUserLoginPasswordFailed = NewError(10010005, lang{en: "Incorrect username or password", zh_cn: "用户名或密码错误"})
	ErrorUserNotFound            = NewError(10010006, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorUserOldPasswordFailed   = NewError(10010007, lang{en: "Old password is incorrect", zh_cn: "旧密码不正确"})
	ErrorTokenGenerate           = NewError(10010008, lang{en: "Token generate failed", zh_cn: "令牌生成失败"})
	ErrorUserUsernameNotValid    = NewError(10010009, lang{en: "Username format is invalid", zh_cn: "用户名格式不正确"})
	ErrorUserPasswordNotMatch    = NewError(10010010, lang{en: "The two passwords do not match", zh_cn: "两次输入的密码不一致"})
	ErrorPasswordNotValid        = NewError(10010011, lang{en: "Password is invalid", zh_cn: "密码无效"})
)

// Vault entry codes // 保险库条目状态码
var (
	ErrorVaultEntryNotFound = NewError(10020001, lang{en: "Vault entry not found", zh_cn: "保险库条目不存在"})
	ErrorVaultAccessDenied  = NewError(10020002, lang{en: "Access to this vault entry is denied", zh_cn: "无权访问该保险库条目"})
	ErrorVaultCrypto        = NewError(10020003, lang{en: "Vault data decryption failed", zh_cn: "保险库数据解密失败"})
	ErrorVaultEntryCreate   = NewError(10020004, lang{en: "Vault entry create failed", zh_cn: "保险库条目创建失败"})
	ErrorVaultEntryModify   = NewError(10020005, lang{en: "Vault entry modify failed", zh_cn: "保险库条目修改失败"})
	ErrorVaultEntryDelete   = NewError(10020006, lang{en: "Vault entry delete failed", zh_cn: "保险库条目删除失败"})
	ErrorVaultEntryList     = NewError(10020007, lang{en: "Vault entry list failed", zh_cn: "保险库条目列表获取失败"})
	ErrorVaultSync          = NewError(10020008, lang{en: "Vault sync failed", zh_cn: "保险库同步失败"})
)
